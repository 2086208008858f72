package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/money"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("WIRELETTER_MAIL_API_KEY", "re_live_secret")
	cfg := DefaultConfig()

	if cfg.MailAPIKey != "" {
		t.Errorf("MailAPIKey = %q, want empty default", cfg.MailAPIKey)
	}

	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %v, want %v", cfg.ListenAddr, DefaultListenAddr)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.Locale != money.DefaultLocale {
		t.Errorf("Locale = %v, want %v", cfg.Locale, money.DefaultLocale)
	}
	if len(cfg.Letter.Opening) != 2 {
		t.Errorf("default letter has %d opening paragraphs", len(cfg.Letter.Opening))
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return DefaultConfig()
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		wantURL string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "??" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }, wantErr: true},
		{name: "negative shutdown", mutate: func(c *Config) { c.ShutdownTimeout = -1 }, wantErr: true},
		{
			name:    "trailing slash trimmed",
			mutate:  func(c *Config) { c.MailAPIURL = "http://localhost:9000/" },
			wantURL: "http://localhost:9000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if tt.wantURL != "" && cfg.MailAPIURL != tt.wantURL {
				t.Errorf("MailAPIURL = %q, want %q", cfg.MailAPIURL, tt.wantURL)
			}
		})
	}
}

func TestConfig_ValidateMail(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.MailFrom = "treasury@example.com"
		cfg.MailTo = []string{"bank@example.com"}
		cfg.MailAPIKey = "re_key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing from", mutate: func(c *Config) { c.MailFrom = "" }, wantErr: true},
		{name: "missing to", mutate: func(c *Config) { c.MailTo = nil }, wantErr: true},
		{name: "missing key", mutate: func(c *Config) { c.MailAPIKey = "" }, wantErr: true},
		{name: "dry run needs no key", mutate: func(c *Config) { c.MailAPIKey = ""; c.DryRun = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.ValidateMail(); (err != nil) != tt.wantErr {
				t.Errorf("ValidateMail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSetter_SetList(t *testing.T) {
	var dst []string
	newConfigSetter(nil).setList("mail-to", " a@example.com, ,b@example.com ", &dst)
	if len(dst) != 2 || dst[0] != "a@example.com" || dst[1] != "b@example.com" {
		t.Errorf("setList() = %v", dst)
	}
}

func TestLogger(t *testing.T) {
	if Logger("debug") == nil || Logger("nonsense") == nil || Logger("") == nil {
		t.Error("Logger() returned nil")
	}
}
