// Package wireletter turns wire-transfer request records into Spanish bank
// instruction letters (PDF) and emails them to the bank.
//
// Example usage:
//
//	cfg := wireletter.DefaultConfig()
//	cfg.MailFrom = "treasury@example.com"
//	cfg.MailTo = []string{"transfers@bank.example"}
//	cfg.MailAPIKey = os.Getenv("WIRELETTER_MAIL_API_KEY")
//	svc, err := wireletter.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	receipt, err := svc.Submit(ctx, record)
package wireletter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bft-labs/wireletter/internal/adapters/mail"
	"github.com/bft-labs/wireletter/internal/app"
	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/money"
	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/internal/render"
	"github.com/bft-labs/wireletter/internal/server"
)

// ErrMailNotConfigured is returned by Submit when no mailer or envelope is set.
var ErrMailNotConfigured = errors.New("wireletter: mail dispatch not configured")

type (
	// Letter is the static prose around the transfer table.
	Letter = render.Letter

	// Document is a rendered letter.
	Document = domain.Document

	// Receipt acknowledges a dispatched letter.
	Receipt = app.Receipt

	// Mailer delivers one prepared email.
	Mailer = ports.Mailer

	// Message is a prepared email.
	Message = ports.Message
)

// Config holds the settings of a Service.
type Config struct {
	MailAPIURL  string
	MailAPIKey  string
	MailFrom    string
	MailTo      []string
	CcSubmitter bool

	// DryRun logs messages instead of sending them.
	DryRun bool

	HTTPTimeout time.Duration
	Locale      string
	Letter      Letter
}

// DefaultConfig returns a Config with the built-in letter and de-DE amounts.
func DefaultConfig() Config {
	return Config{
		MailAPIURL:  mail.DefaultAPIURL,
		HTTPTimeout: 15 * time.Second,
		Locale:      money.DefaultLocale,
		Letter:      render.DefaultLetter(),
	}
}

// Service renders and dispatches wire-transfer letters.
// It is safe for concurrent use.
type Service struct {
	pipeline *app.Pipeline
	canSend  bool
	logger   Logger
}

// New creates a Service. Mail settings are only required by Submit.
func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	amounts, err := money.NewFormatter(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	o := defaultOptions(&http.Client{Timeout: cfg.HTTPTimeout})
	for _, opt := range opts {
		opt(&o)
	}

	mailer := o.mailer
	switch {
	case mailer != nil:
	case cfg.DryRun:
		mailer = mail.NewDryRunSender(o.logger)
	case cfg.MailAPIKey != "":
		mailer = mail.NewResendSender(o.httpClient, cfg.MailAPIURL, cfg.MailAPIKey, o.logger)
	}

	renderer := render.New(cfg.Letter,
		render.WithFormatter(amounts),
		render.WithLogger(o.logger),
	)
	dispatcher := mail.NewDispatcher(mailer, mail.Envelope{
		From:        cfg.MailFrom,
		To:          cfg.MailTo,
		CcSubmitter: cfg.CcSubmitter,
	}, o.logger)

	return &Service{
		pipeline: app.NewPipeline(renderer, dispatcher, amounts, o.logger),
		canSend:  mailer != nil && cfg.MailFrom != "" && len(cfg.MailTo) > 0,
		logger:   o.logger,
	}, nil
}

// Submit validates, renders and emails one request record.
func (s *Service) Submit(ctx context.Context, record map[string]any) (Receipt, error) {
	if !s.canSend {
		return Receipt{}, ErrMailNotConfigured
	}
	return s.pipeline.Process(ctx, record)
}

// Process is Submit; it makes Service a server.Processor.
func (s *Service) Process(ctx context.Context, record map[string]any) (Receipt, error) {
	return s.Submit(ctx, record)
}

// Render validates and renders a request record without sending it.
func (s *Service) Render(ctx context.Context, record map[string]any) (Document, error) {
	_, doc, err := s.pipeline.Preview(ctx, record)
	return doc, err
}

// Handler returns the HTTP API (POST /api/wire-transfers, GET /healthz).
func (s *Service) Handler() http.Handler {
	return server.New(s, s.logger).Handler()
}

// Serve runs the HTTP API on addr until ctx is canceled.
func (s *Service) Serve(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	return server.New(s, s.logger).Run(ctx, addr, shutdownTimeout)
}

// IsClientError reports whether err was caused by the submitted record
// rather than by rendering or delivery.
func IsClientError(err error) bool {
	return domain.IsClientError(err)
}
