package digest

import (
	"context"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

// Recipient is one (user, topic) pair of the fan-out: one digest email per
// recipient.
type Recipient struct {
	Name  string
	Email string
	Topic string
}

// RecipientSource yields the full fan-out list for one run.
type RecipientSource interface {
	Recipients() ([]Recipient, error)
}

// Searcher ranks papers for a topic. The production deployment plugs the
// hybrid engine here, the local keyword searcher satisfies it too.
type Searcher interface {
	Search(ctx context.Context, topic string, topK int) ([]paperwatch.Paper, error)
}

// Sender delivers one HTML email.
type Sender interface {
	Send(recipient, subject, htmlBody string) error
}
