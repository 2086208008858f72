package cliconfig

import "os"

// ApplyEnvConfig applies WIRELETTER_* environment variables. Explicit flags win.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("listen", os.Getenv("WIRELETTER_LISTEN_ADDR"), &cfg.ListenAddr)
	s.setString("mail-api-url", os.Getenv("WIRELETTER_MAIL_API_URL"), &cfg.MailAPIURL)
	s.setString("mail-api-key", os.Getenv("WIRELETTER_MAIL_API_KEY"), &cfg.MailAPIKey)
	s.setString("mail-from", os.Getenv("WIRELETTER_MAIL_FROM"), &cfg.MailFrom)
	s.setList("mail-to", os.Getenv("WIRELETTER_MAIL_TO"), &cfg.MailTo)
	s.setString("locale", os.Getenv("WIRELETTER_LOCALE"), &cfg.Locale)
	s.setString("log-level", os.Getenv("WIRELETTER_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("city", os.Getenv("WIRELETTER_CITY"), &cfg.Letter.City)
	s.setString("ordering-party", os.Getenv("WIRELETTER_ORDERING_PARTY"), &cfg.Letter.Party.Name)
	s.setString("debit-account", os.Getenv("WIRELETTER_DEBIT_ACCOUNT"), &cfg.Letter.Party.DebitAccount)

	if err := s.setBoolFromString("cc-submitter", os.Getenv("WIRELETTER_CC_SUBMITTER"), &cfg.CcSubmitter); err != nil {
		return err
	}
	if err := s.setBoolFromString("dry-run", os.Getenv("WIRELETTER_DRY_RUN"), &cfg.DryRun); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("WIRELETTER_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("shutdown-timeout", os.Getenv("WIRELETTER_SHUTDOWN_TIMEOUT"), &cfg.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}
