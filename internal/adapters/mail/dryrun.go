package mail

import (
	"context"

	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/pkg/log"
)

// DryRunSender logs what would be sent and delivers nothing.
type DryRunSender struct {
	logger log.Logger
}

// NewDryRunSender creates a DryRunSender.
func NewDryRunSender(logger log.Logger) *DryRunSender {
	return &DryRunSender{logger: logger}
}

// Send logs the envelope and attachment sizes.
func (s *DryRunSender) Send(_ context.Context, msg ports.Message) error {
	fields := []log.Field{
		log.String("from", msg.From),
		log.Strings("to", msg.To),
		log.String("subject", msg.Subject),
		log.Int("html_bytes", len(msg.HTML)),
	}
	for _, a := range msg.Attachments {
		fields = append(fields, log.Int(a.Filename, len(a.Content)))
	}
	s.logger.Info("dry run: email not sent", fields...)
	return nil
}
