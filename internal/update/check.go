// Package update checks whether a newer peon-ping release exists.
//
// The installed version lives in <peon dir>/VERSION (written by the
// installer); the latest version is the raw VERSION file on the main
// branch. Checks triggered by hooks are throttled to once per day and run
// fire-and-forget: the result is parked in .update_available and surfaced
// as a stderr notice on the next session start.
package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// VersionURL is the remote VERSION file for the main branch.
	VersionURL = "https://raw.githubusercontent.com/tonyyont/peon-ping/main/VERSION"

	// DefaultHTTPTimeout is the default timeout for the version fetch.
	DefaultHTTPTimeout = 5 * time.Second

	// checkInterval throttles hook-triggered checks.
	checkInterval = 24 * time.Hour

	// File names inside the peon directory.
	versionFileName   = "VERSION"
	lastCheckFileName = ".last_update_check"
	noticeFileName    = ".update_available"
)

// Check is the result of comparing local and remote versions.
type Check struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Checker fetches the remote version and maintains the notice files for
// one peon installation.
type Checker struct {
	dir        string
	httpClient *http.Client
	versionURL string
}

// NewChecker creates a checker for the given peon directory. A zero
// timeout falls back to DefaultHTTPTimeout.
func NewChecker(peonDir string, timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Checker{
		dir:        peonDir,
		httpClient: &http.Client{Timeout: timeout},
		versionURL: VersionURL,
	}
}

// SetVersionURL overrides the remote URL. Intended for tests.
func (c *Checker) SetVersionURL(url string) {
	c.versionURL = url
}

// LocalVersion returns the installed version from the VERSION file, or ""
// when unknown.
func (c *Checker) LocalVersion() string {
	data, err := os.ReadFile(filepath.Join(c.dir, versionFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// MaybeCheckAsync starts a throttled background check and returns
// immediately. The goroutine is never awaited; if the process exits first
// the check simply happens on a later invocation.
func (c *Checker) MaybeCheckAsync() {
	go func() {
		if !c.due(time.Now()) {
			return
		}
		c.recordCheck(time.Now())
		_, _ = c.Check(context.Background())
	}()
}

// Check fetches the remote version, compares it to the local one, and
// updates the .update_available notice file accordingly.
func (c *Checker) Check(ctx context.Context) (Check, error) {
	local := c.LocalVersion()

	remote, err := c.fetchRemoteVersion(ctx)
	if err != nil {
		return Check{CurrentVersion: local}, err
	}

	result := Check{
		CurrentVersion:  local,
		LatestVersion:   remote,
		UpdateAvailable: remote != "" && local != "" && remote != local,
	}

	noticePath := filepath.Join(c.dir, noticeFileName)
	if result.UpdateAvailable {
		_ = os.WriteFile(noticePath, []byte(remote), 0644)
	} else {
		_ = os.Remove(noticePath)
	}

	return result, nil
}

// Notice returns a pending update notice left by an earlier check.
// ok is false when no update is pending.
func (c *Checker) Notice() (current, latest string, ok bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, noticeFileName))
	if err != nil {
		return "", "", false
	}
	latest = strings.TrimSpace(string(data))
	if latest == "" {
		return "", "", false
	}
	current = c.LocalVersion()
	if current == "" {
		current = "?"
	}
	return current, latest, true
}

// due reports whether the daily throttle allows a check now.
func (c *Checker) due(now time.Time) bool {
	data, err := os.ReadFile(filepath.Join(c.dir, lastCheckFileName))
	if err != nil {
		return true
	}
	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return true
	}
	return now.Sub(time.Unix(last, 0)) > checkInterval
}

// recordCheck stamps the throttle file.
func (c *Checker) recordCheck(now time.Time) {
	path := filepath.Join(c.dir, lastCheckFileName)
	_ = os.WriteFile(path, []byte(strconv.FormatInt(now.Unix(), 10)), 0644)
}

// fetchRemoteVersion downloads and trims the remote VERSION file.
func (c *Checker) fetchRemoteVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.versionURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "peon-ping")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
