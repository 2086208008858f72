package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/money"
	"github.com/bft-labs/wireletter/internal/render"
)

// DefaultListenAddr is where `wireletter serve` listens by default.
const DefaultListenAddr = ":8080"

// Config holds CLI configuration for wireletter.
type Config struct {
	ListenAddr string

	MailAPIURL  string
	MailAPIKey  string
	MailFrom    string
	MailTo      []string
	CcSubmitter bool
	DryRun      bool

	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration

	Locale   string
	LogLevel string

	Letter render.Letter
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      DefaultListenAddr,
		HTTPTimeout:     15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Locale:          money.DefaultLocale,
		LogLevel:        "info",
		Letter:          render.DefaultLetter(),
	}
}

// DefaultConfigPath returns ~/.wireletter/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".wireletter", "config.toml")
	}
	return ""
}

// Validate checks settings every command needs.
func (c *Config) Validate() error {
	if _, err := money.NewFormatter(c.Locale); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", domain.ErrInvalidConfig)
	}
	c.MailAPIURL = strings.TrimRight(c.MailAPIURL, "/")
	return nil
}

// ValidateMail checks the settings needed to dispatch letters.
func (c *Config) ValidateMail() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.MailFrom == "" {
		return fmt.Errorf("%w: mail-from is required", domain.ErrInvalidConfig)
	}
	if len(c.MailTo) == 0 {
		return fmt.Errorf("%w: mail-to is required", domain.ErrInvalidConfig)
	}
	if c.MailAPIKey == "" && !c.DryRun {
		return fmt.Errorf("%w: mail-api-key is required (or use --dry-run)", domain.ErrInvalidConfig)
	}
	return nil
}

// configSetter applies values only when the matching flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setList splits a comma separated string, dropping empty entries.
func (s *configSetter) setList(flag, value string, dst *[]string) {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	s.setStrings(flag, items, dst)
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
