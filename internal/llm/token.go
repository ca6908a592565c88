package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNoGitHubToken is returned when no token source yields a token.
var ErrNoGitHubToken = errors.New("GitHub token not found: set TZBUDDY_GITHUB_TOKEN or GITHUB_TOKEN, or sign in to GitHub Copilot in your editor")

// tokenEnvVars are checked in order before any Copilot config file.
var tokenEnvVars = []string{"TZBUDDY_GITHUB_TOKEN", "GITHUB_TOKEN"}

// LoadGitHubToken finds a GitHub OAuth token in the environment or in the
// files the Copilot editor plugins write (hosts.json, then apps.json).
func LoadGitHubToken() (string, error) {
	for _, env := range tokenEnvVars {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}

	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}
	for _, name := range []string{"hosts.json", "apps.json"} {
		if token, err := readCopilotToken(filepath.Join(dir, "github-copilot", name)); err == nil {
			return token, nil
		}
	}
	return "", ErrNoGitHubToken
}

// userConfigDir mirrors where the Copilot plugins store their state.
func userConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Local"), nil
	}
	return filepath.Join(home, ".config"), nil
}

// readCopilotToken returns the oauth_token of the first github.com entry.
// Keys look like "github.com" or "github.com:Iv1.b507a08c87ecfe98".
func readCopilotToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var hosts map[string]struct {
		OAuthToken string `json:"oauth_token"`
	}
	if err := json.Unmarshal(data, &hosts); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	for host, entry := range hosts {
		if strings.HasPrefix(host, "github.com") && entry.OAuthToken != "" {
			return entry.OAuthToken, nil
		}
	}
	return "", fmt.Errorf("no github.com token in %s", path)
}
