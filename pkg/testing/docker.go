package testing

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const containerMaxWait = 90 * time.Second

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "create dockertest pool")
	pool.MaxWait = containerMaxWait

	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable, skipping: %s", err)
	}
	return pool
}

// StartPostgres runs a throwaway postgres container, executes initSQL on it and returns a pool.
// POSTGRES_HOST skips docker and uses an already running database instead.
func StartPostgres(t *testing.T, initSQL string) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		t.Logf("using postgres host: %s", host)
		return connectPostgres(t, ctx, fmt.Sprintf("postgres://postgres@%s/sportlog?sslmode=disable", net.JoinHostPort(host, "5432")), initSQL, nil)
	}

	dockerPool := newDockerPool(t)
	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=sportlog",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/sportlog?sslmode=disable",
		pgResource.GetPort("5432/tcp"),
	)
	return connectPostgres(t, ctx, dsn, initSQL, dockerPool)
}

func connectPostgres(t *testing.T, ctx context.Context, dsn, initSQL string, dockerPool *dockertest.Pool) *pgxpool.Pool {
	t.Helper()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err, "parse db config")

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err, "create connection pool")
	t.Cleanup(db.Close)

	ping := func() error {
		return db.Ping(ctx)
	}
	if dockerPool != nil {
		err = dockerPool.Retry(ping)
	} else {
		err = ping()
	}
	require.NoError(t, err, "connect to db")

	if initSQL != "" {
		_, err = db.Exec(ctx, initSQL)
		require.NoError(t, err, "run init script")
	}

	return db
}

// StartRedis runs a throwaway redis container and returns a connected client.
// REDIS_HOST skips docker and uses an already running redis instead.
func StartRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if host := os.Getenv("REDIS_HOST"); host != "" {
		t.Logf("using redis host: [%s]", host)
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(host, "6379"),
			Password: os.Getenv("REDIS_PASS"),
		})
		t.Cleanup(func() { _ = rdb.Close() })
		require.NoError(t, rdb.Ping(ctx).Err(), "ping redis")
		return rdb
	}

	dockerPool := newDockerPool(t)
	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		if err := dockerPool.Purge(redisResource); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})

	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", redisResource.GetPort("6379/tcp")),
	})
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, dockerPool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}), "ping redis")

	return rdb
}
