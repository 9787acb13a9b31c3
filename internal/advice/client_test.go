package advice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finsage-cli/finsage/internal/model"
)

func testProfile() model.UserProfile {
	return model.UserProfile{
		Age:             30,
		MonthlyIncome:   50000,
		MonthlyExpenses: 30000,
		CurrentSavings:  10000,
		Risk:            model.RiskMedium,
		Goal:            model.GoalWealth,
	}
}

func testTopics() []model.Topic {
	return []model.Topic{model.TopicStocks, model.TopicEmergencyFund}
}

// envelope wraps an analysis payload in the generateContent response shape.
func envelope(t *testing.T, analysis any) []byte {
	t.Helper()
	text, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("marshal analysis: %v", err)
	}
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(text)}}}},
		},
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return body
}

func newTestClient(srvURL string) *Client {
	return NewClient(Options{APIKey: "test-key", BaseURL: srvURL})
}

func TestGenerateParsesValidResponse(t *testing.T) {
	analysis := model.AnalysisResult{
		Overview: "Healthy surplus, thin emergency cushion.",
		Suggestions: []model.Suggestion{
			{Field: "Stocks", Status: model.StatusGood, Title: "Index first", Content: "Broad funds before single names.", ActionItem: "Open a brokerage account."},
			{Field: "Emergency Fund", Status: model.StatusWarning, Title: "Three months minimum", Content: "Savings cover one month of expenses.", ActionItem: "Automate a monthly transfer."},
		},
	}

	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("responseMimeType = %q", req.GenerationConfig.ResponseMIMEType)
		}
		if req.GenerationConfig.ResponseSchema == nil {
			t.Error("request missing response schema")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(envelope(t, analysis))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Generate(context.Background(), testProfile(), testTopics())
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}

	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if result.Overview != analysis.Overview {
		t.Errorf("overview = %q", result.Overview)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(result.Suggestions))
	}
	if result.Suggestions[0].Field != "Stocks" || result.Suggestions[1].Field != "Emergency Fund" {
		t.Errorf("suggestion order not preserved: %+v", result.Suggestions)
	}
}

func TestGenerateToleratesUnknownFieldLabels(t *testing.T) {
	analysis := model.AnalysisResult{
		Overview: "ok",
		Suggestions: []model.Suggestion{
			{Field: "Estate Planning", Status: model.StatusAlert, Title: "t", Content: "c", ActionItem: "a"},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(envelope(t, analysis))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Generate(context.Background(), testProfile(), testTopics())
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if result.Suggestions[0].Field != "Estate Planning" {
		t.Errorf("free-text field label mangled: %q", result.Suggestions[0].Field)
	}
}

func TestGenerateFailureModesCollapse(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "service error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed envelope",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "candidate text not analysis json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"plain prose"}]}}]}`))
			},
		},
		{
			name: "missing overview",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(envelope(t, model.AnalysisResult{Suggestions: []model.Suggestion{}}))
			},
		},
		{
			name: "unknown status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(envelope(t, map[string]any{
					"overview": "ok",
					"suggestions": []map[string]any{
						{"field": "Stocks", "status": "Critical", "title": "t", "content": "c", "actionItem": "a"},
					},
				}))
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()

			_, err := newTestClient(srv.URL).Generate(context.Background(), testProfile(), testTopics())
			if !errors.Is(err, ErrGenerationFailed) {
				t.Fatalf("Generate() = %v, want ErrGenerationFailed", err)
			}
		})
	}
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	c := NewClient(Options{})
	_, err := c.Generate(context.Background(), testProfile(), testTopics())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Generate() = %v, want ErrMissingAPIKey", err)
	}
}
