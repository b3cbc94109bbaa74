package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/genai"
	"github.com/proplens/proplens/internal/pipeline"
	"github.com/proplens/proplens/internal/report"
)

const testAPIKey = "test-api-key"

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, prompt string) (string, []report.GroundingSource, error) {
	for _, sp := range genai.SectionPrompts {
		if strings.Contains(prompt, sp.Label) {
			return fmt.Sprintf("## %s\n\n- Type: House\n", sp.Label), nil, nil
		}
	}
	return "", nil, fmt.Errorf("unknown prompt")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		APIKey:                testAPIKey,
		WorkerCount:           2,
		MaxQueueSize:          10,
		MaxConcurrentGenerate: 5,
		MaxReportBytes:        1 << 20,
		JobTTL:                time.Minute,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	orch := pipeline.NewOrchestrator(cfg, stubGenerator{}, log)
	ctx, cancel := context.WithCancel(context.Background())
	orch.Start(ctx)
	t.Cleanup(func() {
		cancel()
		orch.Stop()
	})

	return NewServer(orch, genai.NewClient("unused", "test-model"), log, cfg)
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	return req
}

func TestHealthIsPublic(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reports/parse", strings.NewReader("x")))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/parse", strings.NewReader("x"))
	req.Header.Set("Authorization", "Bearer wrong-key")
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestParseReportRawBody(t *testing.T) {
	srv := newTestServer(t)
	body := "## 🏠 Property Overview\n\n- Type: House\n- Bedrooms: 4\n"

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/api/reports/parse", strings.NewReader(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Sections, 1)
	require.Equal(t, report.KindOverview, doc.Sections[0].Kind)
	require.NotNil(t, doc.Sections[0].Overview)
	require.Equal(t, "4", doc.Sections[0].Overview.Bedrooms)
}

func TestParseReportJSONBody(t *testing.T) {
	srv := newTestServer(t)
	payload, _ := json.Marshal(map[string]string{
		"text": "## 📈 Price History\n\n- Date: 2021-03-15, Price: $900k\n",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/reports/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(req))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Prices, 1)
	require.Equal(t, "$900k", doc.Sections[0].Prices[0].Display)
}

func TestParseReportEmptyTextYieldsEmptyDocument(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/api/reports/parse", strings.NewReader(""))))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc report.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Empty(t, doc.Sections)
}

func TestAnalysisLifecycle(t *testing.T) {
	srv := newTestServer(t)

	payload, _ := json.Marshal(map[string]string{"address": "12 Smith St, Kenmore QLD"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(req))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var created pipeline.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	deadline := time.Now().Add(5 * time.Second)
	var status pipeline.Snapshot
	for time.Now().Before(deadline) {
		rec = httptest.NewRecorder()
		srv.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ID, nil)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		if status.Status == pipeline.StatusCompleted {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	require.Equal(t, pipeline.StatusCompleted, status.Status)
	require.NotNil(t, status.Document)
	require.Len(t, status.Document.Sections, 5)
}

func TestAnalysisValidation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyses", strings.NewReader(`{"address":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(req))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/analyses/nope", nil)))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProviderStats(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test-model")
}
