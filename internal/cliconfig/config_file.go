package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML friendly types.
type FileConfig struct {
	ListenAddr      string        `toml:"listen_addr"`
	MailAPIURL      string        `toml:"mail_api_url"`
	MailAPIKey      string        `toml:"mail_api_key"`
	MailFrom        string        `toml:"mail_from"`
	MailTo          []string      `toml:"mail_to"`
	CcSubmitter     *bool         `toml:"cc_submitter"`
	DryRun          *bool         `toml:"dry_run"`
	HTTPTimeout     string        `toml:"http_timeout"`
	ShutdownTimeout string        `toml:"shutdown_timeout"`
	Locale          string        `toml:"locale"`
	LogLevel        string        `toml:"log_level"`
	Letter          *LetterConfig `toml:"letter"`
}

// LetterConfig is the [letter] table.
type LetterConfig struct {
	City          string   `toml:"city"`
	Opening       []string `toml:"opening"`
	Closing       []string `toml:"closing"`
	Signature     string   `toml:"signature"`
	Attribution   []string `toml:"attribution"`
	OrderingParty string   `toml:"ordering_party"`
	DebitAccount  string   `toml:"debit_account"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig copies file values into cfg unless the flag was set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("listen", fc.ListenAddr, &cfg.ListenAddr)
	s.setString("mail-api-url", fc.MailAPIURL, &cfg.MailAPIURL)
	s.setString("mail-api-key", fc.MailAPIKey, &cfg.MailAPIKey)
	s.setString("mail-from", fc.MailFrom, &cfg.MailFrom)
	s.setStrings("mail-to", fc.MailTo, &cfg.MailTo)
	s.setString("locale", fc.Locale, &cfg.Locale)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("cc-submitter", fc.CcSubmitter, &cfg.CcSubmitter)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout); err != nil {
		return err
	}

	if l := fc.Letter; l != nil {
		s.setString("city", l.City, &cfg.Letter.City)
		s.setStrings("", l.Opening, &cfg.Letter.Opening)
		s.setStrings("", l.Closing, &cfg.Letter.Closing)
		s.setString("", l.Signature, &cfg.Letter.Signature)
		s.setStrings("", l.Attribution, &cfg.Letter.Attribution)
		s.setString("ordering-party", l.OrderingParty, &cfg.Letter.Party.Name)
		s.setString("debit-account", l.DebitAccount, &cfg.Letter.Party.DebitAccount)
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
