package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tapwords/internal/config"
	"github.com/verte-zerg/tapwords/internal/model"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(logLevelEnv, "")
	return dir
}

func runSample(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"sample"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSampleIsReproducible(t *testing.T) {
	isolateConfig(t)
	first, stderr, err := runSample(t, "--seed", "42", "--words", "5")
	require.NoError(t, err)
	assert.Equal(t, "seed: 42\n", stderr)
	assert.Len(t, strings.Fields(first), 5)

	second, _, err := runSample(t, "-s", "42", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, _, err := runSample(t, "--seed", "43", "--words", "5")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSampleLayout(t *testing.T) {
	isolateConfig(t)
	lexPath := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(lexPath, []byte("alpha\nbeta\ngamma\n"), 0o644))

	out, _, err := runSample(t, "--seed", "1", "--words", "3", "--lexicon", lexPath, "--width", "40", "--height", "20")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, `^\s*\d+,\d+\s+".+"$`, line)
	}
}

func TestSampleTooManyWords(t *testing.T) {
	isolateConfig(t)
	lexPath := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(lexPath, []byte("alpha\nbeta\n"), 0o644))

	_, _, err := runSample(t, "--words", "3", "--lexicon", lexPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only contains 2")
}

func TestSampleBadLexicon(t *testing.T) {
	isolateConfig(t)
	_, _, err := runSample(t, "--lexicon", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load lexicon")
}

func TestResolvePracticeConfigPrefersFlags(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "tapwords", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[practice]\nwords = 30\nseed = 7\nlog-level = \"debug\"\n"), 0o644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--words", "5"}))
	cfg, err := resolvePracticeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Words)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)

	cmd = newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "0"}))
	cfg, err = resolvePracticeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Words)
	require.NotNil(t, cfg.Seed)
	assert.Zero(t, *cfg.Seed)
}

func TestResolvePracticeConfigDefaults(t *testing.T) {
	isolateConfig(t)
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	cfg, err := resolvePracticeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, defaultWords, cfg.Words)
	assert.Nil(t, cfg.Seed)
	assert.Empty(t, cfg.LexiconPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLogLevelEnvOverridesConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv(logLevelEnv, "warn")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	cfg, err := resolvePracticeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(model.Config{Words: 1}))
	assert.Error(t, validateConfig(model.Config{Words: 0}))
	assert.Error(t, validateConfig(model.Config{Words: 3, LogLevel: "chatty"}))
}

func TestEnsureConfigFileWritesValidTemplate(t *testing.T) {
	isolateConfig(t)
	path, err := ensureConfigFile(config.DefaultConfigPath())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[practice]")

	var cfg config.FileConfig
	_, err = toml.Decode(string(data), &cfg)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[practice]\nwords = 3\n"), 0o644))
	_, err = ensureConfigFile(path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[practice]\nwords = 3\n", string(data))
}

func TestSampleUsesConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	lexPath := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(lexPath, []byte("alpha\nbeta\ngamma\ndelta\nomega\n"), 0o644))
	path := filepath.Join(dir, "tapwords", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	content := "[practice]\nwords = 3\nseed = 7\nlexicon = \"" + filepath.ToSlash(lexPath) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fromConfig, stderr, err := runSample(t)
	require.NoError(t, err)
	assert.Equal(t, "seed: 7\n", stderr)
	assert.Len(t, strings.Fields(fromConfig), 3)

	fromFlags, _, err := runSample(t, "--seed", "7", "--words", "3", "--lexicon", lexPath)
	require.NoError(t, err)
	assert.Equal(t, fromFlags, fromConfig)

	overridden, stderr, err := runSample(t, "--seed", "8")
	require.NoError(t, err)
	assert.Equal(t, "seed: 8\n", stderr)
	assert.Len(t, strings.Fields(overridden), 3)
}
