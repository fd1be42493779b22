package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleri/go-holdkit/holdkit/input/action"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
hold_duration_ms = 1500
tick_rate_hz = 30
action = "ButtonB"

[keymap]
"h" = "ButtonB"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.HoldDuration())
	assert.Equal(t, 30, cfg.TickRate())

	act, err := cfg.ResolveAction()
	require.NoError(t, err)
	assert.Equal(t, action.ButtonB, act)

	keymap, err := cfg.ResolveKeymap()
	require.NoError(t, err)
	assert.Equal(t, action.ButtonB, keymap["h"])
	assert.Equal(t, action.DPadUp, keymap["Up"], "defaults survive overrides")
}

func TestLoad_NoConfigFileMeansDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.HoldDuration())
	assert.Equal(t, 60, cfg.TickRate())

	act, err := cfg.ResolveAction()
	require.NoError(t, err)
	assert.Equal(t, action.ButtonA, act)
}

func TestLoad_MissingExplicitPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, `hold_duration_ms = [`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_UnknownActionNames(t *testing.T) {
	cfg := &Config{Action: "ButtonQ"}
	_, err := cfg.ResolveAction()
	assert.Error(t, err)

	cfg = &Config{Keymap: map[string]string{"h": "Nope"}}
	_, err = cfg.ResolveKeymap()
	assert.Error(t, err)
}
