package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMainFunction(t *testing.T) {
	// Test that rootCmd is defined and has expected properties
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "txfilter", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "Filter and summarise")
	assert.Contains(t, rootCmd.Long, "Txfilter")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Txfilter v"+version)
}

func TestFilter_SampleByType(t *testing.T) {
	out, _, err := execute(t, "filter", "--type", "cost")
	require.NoError(t, err)

	assert.Contains(t, out, "Andrzej")
	assert.Contains(t, out, "Wiesiek")
	assert.NotContains(t, out, "Romek")
	assert.Regexp(t, `[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}`, out)
}

func TestFilter_IssuerAndRange(t *testing.T) {
	out, _, err := execute(t, "filter", "--issuer", "Zbyszek", "--min", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Zbyszek")
	assert.Contains(t, out, "10")
	assert.NotContains(t, out, "Andrzej")
}

func TestFilter_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "filter", "--type", "refund")
	assert.Error(t, err)

	_, _, err = execute(t, "filter", "--max", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --max")
}

func TestReport_Sample(t *testing.T) {
	out, _, err := execute(t, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "62")
	assert.Contains(t, out, "Tadeusz, Zbyszek")
}

func TestReport_InvalidThreshold(t *testing.T) {
	_, _, err := execute(t, "report", "--threshold", "big")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "txs.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[[transactions]]
issuer = "Zbyszek"
type = "cost"
  [[transactions.chargelines]]
  amount = "10"
  description = "rower"
  tax_percent = 5

[[transactions]]
issuer = "Romek"
type = "income"
  [[transactions.chargelines]]
  amount = "10"
  description = "rolki"
  tax_percent = 7
`), 0644))

	out, stderr, err := execute(t, "--config", configPath, "--log-level", "debug", "filter", "--type", "income")
	require.NoError(t, err)
	assert.Contains(t, out, "Romek")
	assert.NotContains(t, out, "Zbyszek")
	assert.Contains(t, stderr, "loaded transactions")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "report")
	assert.Error(t, err)
}
