package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		baseURL  string
		wantURL  string
		wantType string
	}{
		{provider: "ollama", wantURL: defaultOllamaBaseURL, wantType: "*llm.OllamaClient"},
		{provider: "Ollama", baseURL: "http://gpu-box:11434", wantURL: "http://gpu-box:11434", wantType: "*llm.OllamaClient"},
		{provider: "lmstudio", wantURL: defaultLMStudioBaseURL, wantType: "*llm.CompatClient"},
		{provider: "lm-studio", wantURL: defaultLMStudioBaseURL, wantType: "*llm.CompatClient"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			client, err := NewClient(tt.provider, "llama3", tt.baseURL)
			if err != nil {
				t.Fatalf("NewClient failed: %v", err)
			}
			if got := fmt.Sprintf("%T", client); got != tt.wantType {
				t.Fatalf("client type = %s, want %s", got, tt.wantType)
			}

			var gotURL string
			switch c := client.(type) {
			case *OllamaClient:
				gotURL = c.baseURL
			case *CompatClient:
				gotURL = c.baseURL
			}
			if gotURL != tt.wantURL {
				t.Errorf("baseURL = %q, want %q", gotURL, tt.wantURL)
			}
		})
	}
}

func TestNewClient_RequiresModel(t *testing.T) {
	for _, provider := range []string{"ollama", "lmstudio"} {
		if _, err := NewClient(provider, " ", ""); err == nil {
			t.Errorf("%s: expected error for empty model", provider)
		}
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient("carrier-pigeon", "model", "")
	if err == nil || !strings.Contains(err.Error(), "copilot, lmstudio, ollama") {
		t.Fatalf("expected unsupported provider error listing providers, got %v", err)
	}
}

func TestNormalizeProvider(t *testing.T) {
	got := []string{
		NormalizeProvider(""),
		NormalizeProvider(" LLMStudio "),
		NormalizeProvider("OLLAMA"),
	}
	want := []string{ProviderCopilot, ProviderLMStudio, ProviderOllama}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeProvider mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGitHubToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TZBUDDY_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	if _, err := LoadGitHubToken(); !errors.Is(err, ErrNoGitHubToken) {
		t.Fatalf("expected ErrNoGitHubToken, got %v", err)
	}

	copilotDir := filepath.Join(dir, "github-copilot")
	if err := os.MkdirAll(copilotDir, 0o755); err != nil {
		t.Fatal(err)
	}
	apps := `{"github.com:Iv1.b507a08c87ecfe98": {"user": "ada", "oauth_token": "gho_apps"}}`
	if err := os.WriteFile(filepath.Join(copilotDir, "apps.json"), []byte(apps), 0o600); err != nil {
		t.Fatal(err)
	}

	token, err := LoadGitHubToken()
	if err != nil {
		t.Fatalf("LoadGitHubToken failed: %v", err)
	}
	if token != "gho_apps" {
		t.Errorf("token = %q, want gho_apps", token)
	}

	t.Setenv("GITHUB_TOKEN", "gho_env")
	if token, _ := LoadGitHubToken(); token != "gho_env" {
		t.Errorf("token = %q, want environment to win", token)
	}
	t.Setenv("TZBUDDY_GITHUB_TOKEN", "gho_tzbuddy")
	if token, _ := LoadGitHubToken(); token != "gho_tzbuddy" {
		t.Errorf("token = %q, want TZBUDDY_GITHUB_TOKEN to win", token)
	}
}

func TestFetchCopilotToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token gho_ok" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token": "tid=abc", "expires_at": 1700000000}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	token, err := fetchCopilotToken(ctx, srv.Client(), srv.URL, "gho_ok")
	if err != nil {
		t.Fatalf("fetchCopilotToken failed: %v", err)
	}
	if token != "tid=abc" {
		t.Errorf("token = %q", token)
	}

	_, err = fetchCopilotToken(ctx, srv.Client(), srv.URL, "gho_bad")
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Errorf("expected status error, got %v", err)
	}
}
