// SPDX-License-Identifier: MIT
// Dev: KryperAI

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
)

const zeroHash = "0x0000000000000000000000000000000000000000000000000000000000000000"

// PingConfig holds what a node announces about itself.
type PingConfig struct {
	Port        uint16 `toml:"port"`
	Share       uint16 `toml:"share"`
	GenesisHash string `toml:"genesis_hash"`
	Difficulty  uint64 `toml:"difficulty"`
	TopHash     string `toml:"top_hash"`
	SyncAllowed bool   `toml:"sync_allowed"`
}

type Config struct {
	LogLevel string     `toml:"log_level"`
	Ping     PingConfig `toml:"ping"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Ping: PingConfig{
			Port:        3015,
			Share:       32,
			GenesisHash: zeroHash,
			Difficulty:  0,
			TopHash:     zeroHash,
			SyncAllowed: true,
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path
// (skipped when path is empty), a .env file if present, and finally
// AEWIRE_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot load config file: %w", err)
		}
	}

	_ = godotenv.Load()

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, fmt.Errorf("environment override error: %w", err)
	}

	return cfg, validate(cfg)
}

func applyEnvOverrides(cfg *Config) error {
	parseUint := func(key string, bits int) (uint64, bool, error) {
		v := cleanEnvValue(os.Getenv(key))
		if v == "" {
			return 0, false, nil
		}
		n, err := strconv.ParseUint(v, 10, bits)
		if err != nil {
			return 0, false, fmt.Errorf("%s invalid numeric value: %s", key, v)
		}
		return n, true, nil
	}

	if n, ok, err := parseUint("AEWIRE_PING_PORT", 16); err != nil {
		return err
	} else if ok {
		cfg.Ping.Port = uint16(n)
	}
	if n, ok, err := parseUint("AEWIRE_PING_SHARE", 16); err != nil {
		return err
	} else if ok {
		cfg.Ping.Share = uint16(n)
	}
	if n, ok, err := parseUint("AEWIRE_DIFFICULTY", 64); err != nil {
		return err
	} else if ok {
		cfg.Ping.Difficulty = n
	}

	if v := cleanEnvValue(os.Getenv("AEWIRE_SYNC_ALLOWED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AEWIRE_SYNC_ALLOWED invalid boolean value: %s", v)
		}
		cfg.Ping.SyncAllowed = b
	}

	if v := cleanEnvValue(os.Getenv("AEWIRE_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := cleanEnvValue(os.Getenv("AEWIRE_GENESIS_HASH")); v != "" {
		cfg.Ping.GenesisHash = v
	}
	if v := cleanEnvValue(os.Getenv("AEWIRE_TOP_HASH")); v != "" {
		cfg.Ping.TopHash = v
	}

	return nil
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "crit"}

func validate(c Config) error {
	level := strings.ToLower(c.LogLevel)
	known := false
	for _, l := range logLevels {
		if l == level {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}

	if c.Ping.Port == 0 {
		return errors.New("ping port must be > 0")
	}
	if _, err := decodeHash(c.Ping.GenesisHash); err != nil {
		return fmt.Errorf("genesis_hash: %w", err)
	}
	if _, err := decodeHash(c.Ping.TopHash); err != nil {
		return fmt.Errorf("top_hash: %w", err)
	}

	return nil
}

// GenesisHashBytes returns the decoded genesis hash.
func (p PingConfig) GenesisHashBytes() ([]byte, error) { return decodeHash(p.GenesisHash) }

// TopHashBytes returns the decoded top block hash.
func (p PingConfig) TopHashBytes() ([]byte, error) { return decodeHash(p.TopHash) }

func decodeHash(s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("hash must be 32 bytes, got %d", len(b))
	}
	return b, nil
}

func cleanEnvValue(val string) string {
	val = strings.TrimSpace(val)
	if idx := strings.Index(val, "#"); idx != -1 {
		val = strings.TrimSpace(val[:idx])
	}
	return val
}

func (c *Config) Print() {
	fmt.Println("=== Configuration ===")
	fmt.Printf("  Log Level:    %s\n", c.LogLevel)
	fmt.Printf("  Ping Port:    %d\n", c.Ping.Port)
	fmt.Printf("  Share:        %d\n", c.Ping.Share)
	fmt.Printf("  Genesis Hash: %s\n", c.Ping.GenesisHash)
	fmt.Printf("  Top Hash:     %s\n", c.Ping.TopHash)
	fmt.Printf("  Difficulty:   %d\n", c.Ping.Difficulty)
	fmt.Printf("  Sync Allowed: %t\n", c.Ping.SyncAllowed)
	fmt.Println("=====================")
}
