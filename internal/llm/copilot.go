package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/option"
)

const (
	copilotTokenURL = "https://api.github.com/copilot_internal/v2/token"
	copilotBaseURL  = "https://api.githubcopilot.com"

	// DefaultModel is the Copilot model used when none is configured.
	DefaultModel = "gpt-4o"

	userAgent = "Tzbuddy/1.0"
)

// NewCopilotClient exchanges the user's GitHub token for a short-lived
// Copilot token and returns a client for the Copilot chat endpoint.
func NewCopilotClient(model string) (*CompatClient, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	githubToken, err := LoadGitHubToken()
	if err != nil {
		return nil, fmt.Errorf("loading GitHub token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	bearer, err := fetchCopilotToken(ctx, http.DefaultClient, copilotTokenURL, githubToken)
	if err != nil {
		return nil, fmt.Errorf("exchanging token: %w", err)
	}

	return newCompatClient(ProviderCopilot, model, copilotBaseURL,
		option.WithAPIKey(bearer),
		option.WithHeader("Editor-Version", userAgent),
		option.WithHeader("Editor-Plugin-Version", userAgent),
		option.WithHeader("Copilot-Integration-Id", "vscode-chat"),
	), nil
}

// fetchCopilotToken trades a GitHub OAuth token for a Copilot bearer token.
func fetchCopilotToken(ctx context.Context, hc *http.Client, url, githubToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+githubToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token exchange failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Token     string `json:"token"`
		ExpiresAt int64  `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if payload.Token == "" {
		return "", errors.New("token exchange returned an empty token")
	}
	return payload.Token, nil
}

// NewLMStudioClient returns a client for a local LM Studio server.
func NewLMStudioClient(model, baseURL string) (*CompatClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("lm studio model is required")
	}
	if baseURL == "" {
		baseURL = defaultLMStudioBaseURL
	}

	// LM Studio ignores the key but the SDK insists on one.
	apiKey := "lm-studio"
	for _, env := range []string{"LMSTUDIO_API_KEY", "OPENAI_API_KEY"} {
		if v := os.Getenv(env); v != "" {
			apiKey = v
			break
		}
	}

	return newCompatClient(ProviderLMStudio, model, baseURL, option.WithAPIKey(apiKey)), nil
}
