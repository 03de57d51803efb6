// Package cli tests the command surface: hook mode dispatch and the
// pause/packs subcommands.
// Related: internal/cli/hook.go, internal/cli/packs.go
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonyyont/peon-ping/internal/config"
	"github.com/tonyyont/peon-ping/internal/pause"
	"github.com/tonyyont/peon-ping/internal/testutil"
)

// run executes the root command with args and optional stdin, returning
// captured stdout. Commands share the package-level cobra tree, so cli
// tests run sequentially.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// SetArgs(nil) falls back to os.Args, which carries test flags.
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestPauseCycle(t *testing.T) {
	dir := testutil.TempPeonDir(t)

	out, err := run(t, "", "pause")
	require.NoError(t, err)
	assert.Contains(t, out, "sounds paused")
	assert.True(t, pause.Paused(dir))

	out, err = run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "paused")

	out, err = run(t, "", "resume")
	require.NoError(t, err)
	assert.Contains(t, out, "sounds resumed")
	assert.False(t, pause.Paused(dir))

	out, err = run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "active")

	out, err = run(t, "", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "sounds paused")
	assert.True(t, pause.Paused(dir))
}

func TestPacks_List(t *testing.T) {
	dir := testutil.TempPeonDir(t)
	testutil.WritePack(t, dir, "peon", map[string][]string{"complete": {"a.wav"}})
	testutil.WritePack(t, dir, "sc_peasant", map[string][]string{"complete": {"b.wav"}})

	out, err := run(t, "", "packs")
	require.NoError(t, err)
	assert.Contains(t, out, "peon")
	assert.Contains(t, out, "sc_peasant")
	// The default active pack carries the marker.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "peon ") && !strings.Contains(line, "sc_peasant") {
			assert.Contains(t, line, "*")
		}
	}
}

func TestPack_SwitchByName(t *testing.T) {
	dir := testutil.TempPeonDir(t)
	testutil.WritePack(t, dir, "peon", map[string][]string{"complete": {"a.wav"}})
	testutil.WritePack(t, dir, "sc_peasant", map[string][]string{"complete": {"b.wav"}})

	out, err := run(t, "", "pack", "sc_peasant")
	require.NoError(t, err)
	assert.Contains(t, out, "switched to sc_peasant")
	assert.Equal(t, "sc_peasant", config.Load(dir).ActivePack)
}

func TestPack_UnknownName(t *testing.T) {
	dir := testutil.TempPeonDir(t)
	testutil.WritePack(t, dir, "peon", map[string][]string{"complete": {"a.wav"}})

	_, err := run(t, "", "pack", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available packs: peon")
}

func TestPack_CycleFallsBackToFirst(t *testing.T) {
	dir := testutil.TempPeonDir(t)
	testutil.WritePack(t, dir, "alpha", map[string][]string{"complete": {"a.wav"}})
	testutil.WritePack(t, dir, "beta", map[string][]string{"complete": {"b.wav"}})

	// The default active pack "peon" is not installed; cycling starts
	// at the first installed pack.
	out, err := run(t, "", "pack")
	require.NoError(t, err)
	assert.Contains(t, out, "switched to alpha")

	out, err = run(t, "", "pack")
	require.NoError(t, err)
	assert.Contains(t, out, "switched to beta")

	out, err = run(t, "", "pack")
	require.NoError(t, err)
	assert.Contains(t, out, "switched to alpha")
}

func TestHookMode_StopRetitlesTab(t *testing.T) {
	testutil.TempPeonDir(t)

	payload := testutil.HookPayload(t, map[string]string{
		"hook_event_name": "Stop",
		"cwd":             "/w/myproj",
		"session_id":      "s1",
	})

	out, err := run(t, string(payload))
	require.NoError(t, err)
	assert.Contains(t, out, "\033]0;● myproj: done\007")
}

func TestHookMode_EmptyStdinIsQuiet(t *testing.T) {
	testutil.TempPeonDir(t)

	out, err := run(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHookMode_UnknownEventIsQuiet(t *testing.T) {
	dir := testutil.TempPeonDir(t)

	payload := testutil.HookPayload(t, map[string]string{
		"hook_event_name": "PreToolUse",
		"session_id":      "s1",
	})

	out, err := run(t, string(payload))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, testutil.ReadState(t, dir), "unknown events leave nothing behind")
}

func TestInstallCommandPerPlatform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "python install.py", installCommandFor("windows"))
	for _, name := range []string{"mac", "linux", "wsl", "unknown"} {
		assert.Contains(t, installCommandFor(name), "install.sh | bash")
	}
}

func TestHookMode_MalformedPayloadIsQuiet(t *testing.T) {
	testutil.TempPeonDir(t)

	out, err := run(t, `{"hook_event_name":`)
	require.NoError(t, err)
	assert.Empty(t, out)
}
