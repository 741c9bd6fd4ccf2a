package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tradetide/tradetide/ledger"
)

// Config represents the complete session configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Fees    FeeConfig     `json:"fees" yaml:"fees"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	Session SessionConfig `json:"session" yaml:"session"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	Identity       string `json:"identity" yaml:"identity"`
	InitialBalance int64  `json:"initial_balance" yaml:"initial_balance"`
}

// FeeConfig contains fee assessment parameters
type FeeConfig struct {
	Bps int64 `json:"bps" yaml:"bps"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type           string `json:"type" yaml:"type"` // "csv" or "sqlite"
	ExecutionsFile string `json:"executions_file,omitempty" yaml:"executions_file,omitempty"`
	SnapshotsFile  string `json:"snapshots_file,omitempty" yaml:"snapshots_file,omitempty"`
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoggingConfig contains log output parameters
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// SessionConfig is the scripted sequence of trades the run command
// replays through the engine
type SessionConfig struct {
	Trades []TradeStep `json:"trades,omitempty" yaml:"trades,omitempty"`
}

// TradeStep represents one trade submission in the session
type TradeStep struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Quantity int64  `json:"quantity" yaml:"quantity"`
	Price    int64  `json:"price" yaml:"price"`
	Side     string `json:"side" yaml:"side"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Identity == "" {
		return fmt.Errorf("account.identity is required")
	}
	if c.Account.InitialBalance < 0 {
		return fmt.Errorf("account.initial_balance must not be negative")
	}
	if c.Fees.Bps < 0 {
		return fmt.Errorf("fees.bps must not be negative")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.ExecutionsFile == "" || c.Journal.SnapshotsFile == "") {
		return fmt.Errorf("journal executions_file and snapshots_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error")
	}
	for i, step := range c.Session.Trades {
		if step.Symbol == "" {
			return fmt.Errorf("session.trades[%d]: symbol is required", i)
		}
		if step.Quantity <= 0 {
			return fmt.Errorf("session.trades[%d]: quantity must be positive", i)
		}
		if step.Price <= 0 {
			return fmt.Errorf("session.trades[%d]: price must be positive", i)
		}
		if _, err := ledger.ParseSide(step.Side); err != nil {
			return fmt.Errorf("session.trades[%d]: %w", i, err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Identity:       "PAPER-001",
			InitialBalance: ledger.DefaultInitialBalance,
		},
		Fees: FeeConfig{
			Bps: ledger.DefaultFeeBps,
		},
		Journal: JournalConfig{
			Type:           "csv",
			ExecutionsFile: "./executions.csv",
			SnapshotsFile:  "./snapshots.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Session: SessionConfig{
			Trades: []TradeStep{
				{Symbol: "AAPL", Quantity: 10, Price: 15000, Side: "BUY"},
				{Symbol: "AAPL", Quantity: 5, Price: 16000, Side: "SELL"},
			},
		},
	}
}
