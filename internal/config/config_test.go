package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	configPath := writeConfig(t, `
log_level = "debug"
size_threshold = "12.5"

[[transactions]]
issuer = "Zbyszek"
type = "cost"
  [[transactions.chargelines]]
  amount = "10"
  description = "rower"
  tax_percent = 5

[[transactions]]
issuer = "Romek"
type = "INCOME"
  [[transactions.chargelines]]
  amount = 7
  description = "rolki"
  tax_percent = 7
  [[transactions.chargelines]]
  amount = "0.50"
  description = "kask"
  tax_percent = 23
`)

	// Load the config
	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Verify config values
	assert.Equal(t, "debug", config.LogLevel)
	threshold, err := config.Threshold()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(threshold))

	// Check the data set
	require.Len(t, config.Transactions, 2)
	assert.Equal(t, "Zbyszek", config.Transactions[0].Issuer)
	assert.Equal(t, "10", config.Transactions[0].Chargelines[0].Amount)
	assert.Equal(t, 5, config.Transactions[0].Chargelines[0].TaxPercent)

	txs, err := config.BuildTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].IsBuy())
	assert.Equal(t, transaction.Income, txs[1].Type())
	assert.True(t, decimal.RequireFromString("7.5").Equal(txs[1].TotalAmount()))
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `
[[transactions]]
issuer = "Tomek"
type = "cost"
`))
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "10", config.SizeThreshold)

	txs, err := config.BuildTransactions()
	require.NoError(t, err)
	assert.True(t, txs[0].TotalAmount().IsZero())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("TXFILTER_LOG_LEVEL", "warn")

	config, err := LoadConfig(writeConfig(t, `log_level = "debug"`))
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestBuildTransactions_InvalidType(t *testing.T) {
	config := &Config{Transactions: []TransactionConfig{
		{Issuer: "Romek", Type: "income"},
		{Issuer: "Tomek", Type: "refund"},
	}}

	txs, err := config.BuildTransactions()
	assert.Nil(t, txs)
	assert.ErrorIs(t, err, transaction.ErrInvalidType)
	assert.Contains(t, err.Error(), "invalid transaction 1")
}

func TestBuildTransactions_InvalidAmount(t *testing.T) {
	config := &Config{Transactions: []TransactionConfig{{
		Issuer: "Tomek",
		Type:   "cost",
		Chargelines: []ChargelineConfig{
			{Amount: "ten", Description: "deskorolka"},
		},
	}}}

	_, err := config.BuildTransactions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid amount "ten"`)
}

func TestThreshold_Invalid(t *testing.T) {
	_, err := (&Config{SizeThreshold: "big"}).Threshold()
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "10", config.SizeThreshold)
	assert.Empty(t, config.Transactions)
}
