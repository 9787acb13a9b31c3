// Package advice provides the client for the external advice-generation
// service. One user action maps to one request: no retries, no caching,
// all failure modes collapse into ErrGenerationFailed for the caller.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/finsage-cli/finsage/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 30 * time.Second
)

var (
	// ErrGenerationFailed is the single error the wizard sees: transport
	// failure, service error, or a response that fails schema validation.
	ErrGenerationFailed = errors.New("advice: generation failed")
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("advice: no API key configured (set GEMINI_API_KEY or run 'finsage config')")
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("advice: unauthorized (API key rejected)")
	// ErrRateLimited indicates the service rate limit was hit.
	ErrRateLimited = errors.New("advice: rate limited")
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client issues schema-constrained generateContent requests.
type Client struct {
	rc     *resty.Client
	model  string
	hasKey bool
}

// NewClient builds a client from opts.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	mdl := opts.Model
	if mdl == "" {
		mdl = defaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if opts.APIKey != "" {
		rc.SetHeader("x-goog-api-key", opts.APIKey)
	}

	return &Client{rc: rc, model: mdl, hasKey: opts.APIKey != ""}
}

// Generate sends one advice request for the profile and topic selection and
// returns the parsed analysis. The caller is responsible for the guards the
// wizard enforces (positive income, non-empty topics).
func (c *Client) Generate(ctx context.Context, p model.UserProfile, topics []model.Topic) (model.AnalysisResult, error) {
	if !c.hasKey {
		return model.AnalysisResult{}, ErrMissingAPIKey
	}

	rqID := uuid.NewString()
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(p, topics)}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema(),
			Temperature:      0.4,
		},
	}

	slog.Debug("advice request", slog.String("rqID", rqID), slog.String("model", c.model), slog.Int("topics", len(topics)))

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", rqID).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		slog.Error("advice request failed", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.AnalysisResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		slog.Error("advice request unauthorized", slog.String("rqID", rqID))
		return model.AnalysisResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, ErrUnauthorized)
	case http.StatusTooManyRequests:
		slog.Error("advice request rate limited", slog.String("rqID", rqID))
		return model.AnalysisResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, ErrRateLimited)
	}
	if resp.IsError() {
		slog.Error("advice service error", slog.String("rqID", rqID), slog.Int("status", resp.StatusCode()))
		return model.AnalysisResult{}, fmt.Errorf("%w: unexpected status %d", ErrGenerationFailed, resp.StatusCode())
	}

	result, err := parseResponse(resp.Body())
	if err != nil {
		slog.Error("advice response invalid", slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.AnalysisResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	slog.Debug("advice request complete", slog.String("rqID", rqID), slog.Int("suggestions", len(result.Suggestions)))
	return result, nil
}

// parseResponse unwraps the candidate text and validates it against the
// AnalysisResult contract. Unknown suggestion fields pass through; unknown
// statuses and an empty overview do not.
func parseResponse(body []byte) (model.AnalysisResult, error) {
	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("parsing envelope: %w", err)
	}
	if gr.Error != nil {
		return model.AnalysisResult{}, fmt.Errorf("service error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return model.AnalysisResult{}, errors.New("empty response")
	}

	var result model.AnalysisResult
	text := gr.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("parsing analysis: %w", err)
	}
	if result.Overview == "" {
		return model.AnalysisResult{}, errors.New("analysis missing overview")
	}
	for i, s := range result.Suggestions {
		if !s.Status.Valid() {
			return model.AnalysisResult{}, fmt.Errorf("suggestion %d has unknown status %q", i, s.Status)
		}
	}
	return result, nil
}
