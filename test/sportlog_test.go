//go:build integration_test || all_tests

package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/2beens/sportlog/internal/ai"
	"github.com/2beens/sportlog/internal/sports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) do(method, path string, body any, target any) int {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	if target != nil && len(respBody) > 0 {
		require.NoError(t, json.Unmarshal(respBody, target), string(respBody))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) newUser(name string) sports.User {
	var user sports.User
	status := s.do("POST", "/users", map[string]any{"name": name}, &user)
	s.Require().Equal(http.StatusCreated, status)
	return user
}

func (s *IntegrationTestSuite) TestProfileFlow() {
	t := s.T()
	user := s.newUser("Alex")

	var profile sports.UserProfile
	status := s.do("GET", "/users/"+user.ID+"/profile", nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Alex", profile.Name)
	assert.Empty(t, profile.Stats)

	var sport sports.Sport
	status = s.do("POST", "/users/"+user.ID+"/sports", map[string]any{"name": "颠球"}, &sport)
	require.Equal(t, http.StatusCreated, status)

	status = s.do("POST", "/users/"+user.ID+"/sports", map[string]any{"name": "颠球"}, nil)
	assert.Equal(t, http.StatusConflict, status)

	// sport exists but has no records yet
	status = s.do("GET", "/users/"+user.ID+"/profile", nil, &profile)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, profile.Stats, 1)
	assert.Equal(t, sports.RecordSummary{}, profile.Stats[0].BestRecord)
	assert.Empty(t, profile.Stats[0].History)

	for i, value := range []any{52, "60", 45.5} {
		var record sports.Record
		status = s.do("POST", "/records", map[string]any{
			"sportId":   sport.ID,
			"userId":    user.ID,
			"value":     value,
			"unit":      "个",
			"timestamp": 1_700_000_000_000 + i*60_000,
		}, &record)
		require.Equal(t, http.StatusCreated, status)
		assert.NotEmpty(t, record.Date)
	}

	status = s.do("GET", "/users/"+user.ID+"/profile", nil, &profile)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, profile.Stats, 1)
	stats := profile.Stats[0]
	assert.Equal(t, float64(60), stats.BestRecord.Value)
	assert.Equal(t, 45.5, stats.RecentRecord.Value)
	require.Len(t, stats.History, 3)
	assert.Equal(t, 45.5, stats.History[0].Value)

	var records []sports.Record
	status = s.do("GET", "/sports/"+sport.ID+"/records", nil, &records)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, records, 3)
}

func (s *IntegrationTestSuite) TestRecordIngestionCreatesSportOnce() {
	t := s.T()
	user := s.newUser("Mia")

	const writers = 8
	var wg sync.WaitGroup
	statuses := make([]int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"sportName":"跳绳","userId":%q,"value":%d,"unit":"下"}`, user.ID, 100+i)
			resp, err := s.httpClient.Post(serverEndpoint+"/records", "application/json", bytes.NewBufferString(body))
			if err != nil {
				return
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i, status := range statuses {
		assert.Equal(t, http.StatusCreated, status, fmt.Sprintf("writer %d", i))
	}

	var list []sports.Sport
	status := s.do("GET", "/users/"+user.ID+"/sports", nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, "跳绳", list[0].Name)

	var records []sports.Record
	s.do("GET", "/sports/"+list[0].ID+"/records", nil, &records)
	assert.Len(t, records, writers)
}

func (s *IntegrationTestSuite) TestErrors() {
	t := s.T()
	user := s.newUser("Leo")

	assert.Equal(t, http.StatusNotFound, s.do("GET", "/users/not-a-uuid/profile", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/users/00000000-0000-0000-0000-000000000000/profile", nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.do("GET", "/users/not-a-uuid/sports", nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/records", map[string]any{"userId": user.ID, "unit": "个", "sportName": "x"}, nil))
	assert.Equal(t, http.StatusNotFound, s.do("POST", "/records", map[string]any{
		"userId":  user.ID,
		"sportId": "00000000-0000-0000-0000-000000000000",
		"value":   1,
		"unit":    "个",
	}, nil))

	var errResp struct {
		Error string `json:"error"`
	}
	status := s.do("POST", "/users/"+user.ID+"/sports", map[string]any{"image": "x.png"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, errResp.Error)
}

func (s *IntegrationTestSuite) TestAIPlaceholders() {
	t := s.T()
	user := s.newUser("Alex")

	var analysis ai.Analysis
	status := s.do("POST", "/ai/analyze", map[string]any{"text": "我颠球五十个", "existingSports": []string{}}, &analysis)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ai.PlaceholderAnalysis(nil), analysis)

	var report ai.WeeklyReportResponse
	status = s.do("POST", "/ai/weekly-report", map[string]any{
		"stats":    map[string]any{"颠球": 60},
		"userName": "Alex",
		"userId":   user.ID,
	}, &report)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ai.PlaceholderWeeklyMessage("Alex"), report.Message)

	var got sports.User
	require.Equal(t, http.StatusOK, s.do("GET", "/users/"+user.ID, nil, &got))
	assert.Equal(t, report.Message, got.WeeklyMessage)
}
