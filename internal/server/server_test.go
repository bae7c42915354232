package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pencalc/pencalc/internal/difficulty"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(":0", difficulty.DefaultOptions(), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, target any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.StatusCode
}

func TestServer_Healthz(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	status := getJSON(t, ts, "/healthz", &body)

	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want \"ok\"", body["status"])
	}
}

func TestServer_ScoreSingleOperation(t *testing.T) {
	ts := newTestServer(t)

	var body scoreResponse
	status := getJSON(t, ts, "/score?a=840&b=35&op=division", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if body.Operation != "division" {
		t.Errorf("operation = %q, want \"division\"", body.Operation)
	}
	if body.Statement != "840 ÷ 35" {
		t.Errorf("statement = %q, want \"840 ÷ 35\"", body.Statement)
	}
	if body.Score != 44 {
		t.Errorf("score = %v, want 44", body.Score)
	}
	if body.Error != "" {
		t.Errorf("unexpected error field: %q", body.Error)
	}
}

func TestServer_ScoreAll(t *testing.T) {
	ts := newTestServer(t)

	var body []scoreResponse
	status := getJSON(t, ts, "/score?a=840&b=35&op=all", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(body) != 4 {
		t.Fatalf("got %d results, want 4", len(body))
	}
	for _, res := range body {
		if res.Error != "" {
			t.Errorf("%s: unexpected error %q", res.Operation, res.Error)
		}
		if res.Score < 1 {
			t.Errorf("%s: score = %v, want >= 1", res.Operation, res.Score)
		}
	}
}

func TestServer_ScoreOmitsOpParameter(t *testing.T) {
	ts := newTestServer(t)

	var body []scoreResponse
	status := getJSON(t, ts, "/score?a=47&b=38", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	// 47 and 38 admit sum, difference and product but not division.
	if len(body) != 3 {
		t.Fatalf("got %d results, want 3", len(body))
	}
}

func TestServer_ScoreRadixOverride(t *testing.T) {
	ts := newTestServer(t)

	var decimal, binary scoreResponse
	getJSON(t, ts, "/score?a=6&b=3&op=division", &decimal)
	getJSON(t, ts, "/score?a=6&b=3&op=division&radix=2", &binary)

	if binary.Score <= decimal.Score {
		t.Errorf("binary score %v should exceed decimal score %v", binary.Score, decimal.Score)
	}
}

func TestServer_ScoreErrors(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"missing operand", "/score?b=35&op=sum", http.StatusBadRequest},
		{"non-numeric operand", "/score?a=banana&b=35&op=sum", http.StatusBadRequest},
		{"operand too large", "/score?a=99000000000&b=35&op=sum", http.StatusBadRequest},
		{"bad radix", "/score?a=47&b=38&op=sum&radix=1", http.StatusBadRequest},
		{"bad cache", "/score?a=47&b=38&op=sum&cache=-1", http.StatusBadRequest},
		{"inexact division", "/score?a=841&b=35&op=division", http.StatusUnprocessableEntity},
		{"negative difference", "/score?a=35&b=840&op=difference", http.StatusUnprocessableEntity},
		{"unknown operation", "/score?a=47&b=38&op=modulo", http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body map[string]string
			status := getJSON(t, ts, tc.path, &body)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
			if body["error"] == "" {
				t.Error("error field should not be empty")
			}
		})
	}
}

func TestServer_ScoreRejectsPost(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/score", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST /score: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestServer_MetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Generate a little traffic first so the counters are non-trivial.
	resp, err := http.Get(ts.URL + "/score?a=47&b=38&op=sum")
	if err != nil {
		t.Fatalf("GET /score: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
