package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pitchmaker-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL
	return client, srv
}

func TestGeneratePitchStripsMarkdown(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("x-goog-api-key"))
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-2.0-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.GenerationConfig.MaxOutputTokens != 1024 {
			t.Errorf("expected maxOutputTokens 1024, got %d", req.GenerationConfig.MaxOutputTokens)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("expected a single prompt part")
		}

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"**Dear** Hiring Manager, #welcome"}]}}]}`))
	})

	got, err := client.GeneratePitch(context.Background(), llm.PitchInput{JobDescription: "Go backend role"})
	if err != nil {
		t.Fatalf("GeneratePitch: %v", err)
	}
	if got != "Dear Hiring Manager, welcome" {
		t.Fatalf("expected stripped text, got %q", got)
	}
}

func TestGeneratePitchNon200IsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, http.StatusTooManyRequests)
	})

	if _, err := client.GeneratePitch(context.Background(), llm.PitchInput{JobDescription: "x"}); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestGeneratePitchEmptyCandidatesIsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := client.GeneratePitch(context.Background(), llm.PitchInput{JobDescription: "x"}); err == nil {
		t.Fatalf("expected error on empty candidates")
	}
}

func TestNewClientValidatesInputs(t *testing.T) {
	if _, err := NewClient("", "gemini-2.0-flash"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
