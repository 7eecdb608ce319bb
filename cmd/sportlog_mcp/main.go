// Package main runs the sportlog MCP server over stdio (for local editor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/sportlog/internal/config"
	"github.com/2beens/sportlog/internal/db"
	sportlogmcp "github.com/2beens/sportlog/internal/mcp"
	"github.com/2beens/sportlog/internal/sports"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol, keep logs on stderr
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("SPORTLOG_DB_PASSWORD"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	service := sports.NewService(sports.ServiceParams{
		Store:        sports.NewRepo(dbPool),
		StoreTimeout: cfg.StoreTimeout.Duration,
		Location:     cfg.DisplayLocation(),
	})
	server := sportlogmcp.NewServer(service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
