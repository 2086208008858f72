package wireletter

import (
	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// Option configures optional behavior of a Service.
type Option func(*options)

type options struct {
	httpClient ports.HTTPClient
	logger     log.Logger
	mailer     ports.Mailer
}

func defaultOptions(client HTTPClient) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets the client used to reach the mail provider.
// If not provided, a client with Config.HTTPTimeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMailer replaces the built-in mail provider client.
func WithMailer(m Mailer) Option {
	return func(o *options) {
		o.mailer = m
	}
}
