package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/llmconf/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := execute(cmd, a)
	return buf.String(), err
}

func TestCostSetGet(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.yaml")

	out, err := run(t, "--config", cfg, "cost", "get", "OpenAI", "gpt-4")
	require.NoError(t, err)
	assert.Contains(t, out, "input:  30\n")
	assert.Contains(t, out, "output: 60\n")

	_, err = run(t, "--config", cfg, "cost", "set", "openai", "gpt-4", "0.7", "1.4")
	require.NoError(t, err)

	out, err = run(t, "--config", cfg, "cost", "get", "OpenAI", "gpt-4")
	require.NoError(t, err)
	assert.Contains(t, out, "input:  0.7\n")
	assert.Contains(t, out, "output: 1.4\n")

	out, err = run(t, "--config", cfg, "cost", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "OpenAI:gpt-4")
}

func TestCostSet_Rejections(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")

	tests := []struct {
		name string
		args []string
	}{
		{"local provider", []string{"cost", "set", "Ollama", "llama3", "1", "1"}},
		{"unknown provider", []string{"cost", "set", "Acme", "x", "1", "1"}},
		{"bad number", []string{"cost", "set", "OpenAI", "gpt-4", "cheap", "1"}},
		{"negative cost", []string{"cost", "set", "OpenAI", "gpt-4", "--", "-1", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestWindowSetGet(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.toml")

	out, err := run(t, "--config", cfg, "window", "get", "Ollama", "llama3")
	require.NoError(t, err)
	assert.Equal(t, "8000\n", out)

	_, err = run(t, "--config", cfg, "window", "set", "Anthropic", "claude-next", "500000")
	require.NoError(t, err)

	out, err = run(t, "--config", cfg, "window", "get", "Anthropic", "claude-next")
	require.NoError(t, err)
	assert.Equal(t, "500000\n", out)
}

func TestPrompts(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, "--config", cfg, "prompts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "/test\n")
	assert.Contains(t, out, "/explain\n")
	assert.Contains(t, out, "/review\n")

	_, err = run(t, "--config", cfg, "prompts", "set", "doc", "Write", "docs")
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "prompts", "rm", "test")
	require.NoError(t, err)

	out, err = run(t, "--config", cfg, "prompts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "/doc\n    Write docs\n")
	assert.NotContains(t, out, "/test\n")

	_, err = run(t, "--config", cfg, "prompts", "rm", "test")
	assert.Error(t, err)
}

func TestModels(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, "--config", cfg, "models", "Groq")
	require.NoError(t, err)
	assert.Contains(t, out, "llama3-8b-8192")
	assert.NotContains(t, out, "gpt-4")

	out, err = run(t, "--config", cfg, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "gpt-4")
	assert.Contains(t, out, "claude-3-opus-20240229")
}

func TestParams(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, "--config", cfg, "params", "Groq", "llama3-8b-8192")
	require.NoError(t, err)
	assert.Contains(t, out, "https://api.groq.com/openai/v1")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "1m0s")
}

func TestEstimate(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "settings.json")
	prompt := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(prompt, []byte(strings.Repeat("a", 4000)), 0o600))

	out, err := run(t, "--config", cfg, "estimate", "OpenAI", "gpt-4", prompt, "--output-tokens", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "tokens     1000\n")
	assert.Contains(t, out, "fits       true\n")
	// 1000 * 30/1M + 500 * 60/1M
	assert.Contains(t, out, "cost       0.060000\n")

	cmd, a := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(strings.Repeat("a", 40000)))
	cmd.SetArgs([]string{"--config", cfg, "estimate", "Ollama", "llama3"})
	require.NoError(t, execute(cmd, a))
	assert.Contains(t, buf.String(), "fits       false\n")
	assert.Contains(t, buf.String(), "cost       0.000000\n")
}

func TestFit(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")

	cmd, a := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(strings.Repeat("a", 40000)))
	cmd.SetArgs([]string{"--config", cfg, "fit", "Jan", "llama3", "--strategy", "start"})
	require.NoError(t, execute(cmd, a))

	// 8000 window minus 2500 reserved output tokens.
	assert.LessOrEqual(t, len(out.String()), 5500*4+2)
	assert.True(t, strings.HasPrefix(out.String(), "..."))
	assert.Contains(t, errOut.String(), "truncated")

	_, err := run(t, "--config", cfg, "fit", "Jan", "llama3", "--strategy", "sideways")
	assert.Error(t, err)
}

func TestEnvOverlay(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv("LLMCONF_GROQ_API_KEY", "gsk-env")

	out, err := run(t, "--config", cfg, "--env", "params", "Groq", "llama3-8b-8192")
	require.NoError(t, err)
	assert.Contains(t, out, "(set)")

	_, err = run(t, "--config", cfg, "--env", "cost", "set", "Groq", "x", "1", "1")
	assert.Error(t, err, "env values must not be persisted")
}

func TestSQLiteBackend(t *testing.T) {
	db := filepath.Join(t.TempDir(), "settings.db")

	_, err := run(t, "--sqlite", db, "cost", "set", "Mistral", "mistral-large-latest", "2", "6")
	require.NoError(t, err)

	out, err := run(t, "--sqlite", db, "cost", "get", "Mistral", "mistral-large-latest")
	require.NoError(t, err)
	assert.Contains(t, out, "output: 6\n")

	_, err = run(t, "--sqlite", db, "watch")
	assert.Error(t, err)
}

func TestSQLiteClosedWhenCommandFails(t *testing.T) {
	db := filepath.Join(t.TempDir(), "settings.db")

	cmd, a := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--sqlite", db, "window", "set", "OpenAI", "gpt-4", "huge"})
	require.Error(t, execute(cmd, a))

	require.NotNil(t, a.store)
	assert.Nil(t, a.closer)
	_, err := a.store.Load(context.Background())
	require.Error(t, err, "store must be closed after a failed command")
	assert.NotErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, a.close(), "second close is a no-op")
}

func TestUnsupportedConfigFormat(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "settings.ini"), "prompts", "list")
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := run(t, "--config", "unused.ini", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "$id")
}
