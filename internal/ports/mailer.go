package ports

import "context"

// Attachment is a named file carried by a Message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a fully prepared email.
type Message struct {
	From        string
	To          []string
	Cc          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer delivers a message exactly once. Implementations must not retry;
// the provider's error is returned as is.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
