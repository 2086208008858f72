// Package mail dispatches rendered letters by email.
package mail

import (
	"context"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/internal/ports"
	"github.com/bft-labs/wireletter/pkg/log"
)

// Envelope holds the fixed addressing of dispatched letters.
type Envelope struct {
	From string
	To   []string

	// CcSubmitter copies the submitter on every dispatch.
	CcSubmitter bool
}

// Dispatcher turns a rendered letter and its summary into one email.
type Dispatcher struct {
	mailer   ports.Mailer
	envelope Envelope
	logger   log.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(mailer ports.Mailer, envelope Envelope, logger log.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, envelope: envelope, logger: logger}
}

// Message builds the email for a letter without sending it.
func (d *Dispatcher) Message(pdf []byte, s domain.Summary) (ports.Message, error) {
	html, err := SummaryHTML(s)
	if err != nil {
		return ports.Message{}, err
	}
	msg := ports.Message{
		From:    d.envelope.From,
		To:      d.envelope.To,
		ReplyTo: s.SubmitterEmail,
		Subject: Subject(s.ReferenceID),
		HTML:    html,
		Attachments: []ports.Attachment{{
			Filename:    AttachmentName(s.ReferenceID),
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	}
	if d.envelope.CcSubmitter && s.SubmitterEmail != "" {
		msg.Cc = []string{s.SubmitterEmail}
	}
	return msg, nil
}

// Dispatch sends the letter once. Any failure is a *domain.DispatchError.
func (d *Dispatcher) Dispatch(ctx context.Context, pdf []byte, s domain.Summary) error {
	msg, err := d.Message(pdf, s)
	if err != nil {
		return &domain.DispatchError{Err: err}
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.Error("dispatch failed", log.String("reference", s.ReferenceID), log.Err(err))
		return &domain.DispatchError{Err: err}
	}
	d.logger.Info("letter dispatched",
		log.String("reference", s.ReferenceID),
		log.Strings("to", msg.To),
		log.Int("attachment_bytes", len(pdf)),
	)
	return nil
}
