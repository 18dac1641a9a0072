package config

import (
	"fmt"
	"strings"

	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel      string              `mapstructure:"log_level"`
	SizeThreshold string              `mapstructure:"size_threshold"`
	Transactions  []TransactionConfig `mapstructure:"transactions"`
}

// TransactionConfig describes one transaction of the data set
type TransactionConfig struct {
	Issuer      string             `mapstructure:"issuer"`
	Type        string             `mapstructure:"type"` // "cost" or "income"
	Chargelines []ChargelineConfig `mapstructure:"chargelines"`
}

// ChargelineConfig describes one line item. Amount is a decimal string.
type ChargelineConfig struct {
	Amount      string `mapstructure:"amount"`
	Description string `mapstructure:"description"`
	TaxPercent  int    `mapstructure:"tax_percent"`
}

// LoadConfig loads configuration from file and environment variables
// prefixed with TXFILTER_.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix("txfilter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	v := viper.New()
	v.SetEnvPrefix("txfilter")
	v.AutomaticEnv()
	setDefaults(v)
	return &Config{
		LogLevel:      v.GetString("log_level"),
		SizeThreshold: v.GetString("size_threshold"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("size_threshold", "10")
}

// Threshold parses the size threshold separating small and big transactions.
func (c *Config) Threshold() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.SizeThreshold)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid size_threshold %q: %w", c.SizeThreshold, err)
	}
	return d, nil
}

// BuildTransactions converts the configured data set into transactions,
// in file order.
func (c *Config) BuildTransactions() ([]transaction.Transaction, error) {
	txs := make([]transaction.Transaction, 0, len(c.Transactions))
	for i, tc := range c.Transactions {
		tx, err := tc.build()
		if err != nil {
			return nil, fmt.Errorf("invalid transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (tc TransactionConfig) build() (transaction.Transaction, error) {
	typ, err := transaction.ParseType(tc.Type)
	if err != nil {
		return transaction.Transaction{}, err
	}

	lines := make([]transaction.Chargeline, 0, len(tc.Chargelines))
	for j, lc := range tc.Chargelines {
		amount, err := decimal.NewFromString(lc.Amount)
		if err != nil {
			return transaction.Transaction{}, fmt.Errorf("chargeline %d: invalid amount %q: %w", j, lc.Amount, err)
		}
		lines = append(lines, transaction.NewChargeline(amount, lc.Description, lc.TaxPercent))
	}

	return transaction.New(tc.Issuer, typ, lines)
}
