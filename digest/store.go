package digest

import (
	"strings"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/users"
)

// StoreRecipientSource fans out over the registry instead of a flat file:
// one recipient per registered (user, topic) pair. Placeholder rows, i.e.
// users without topics, get no email.
type StoreRecipientSource struct {
	Users *users.Service
}

func (s *StoreRecipientSource) Recipients() ([]Recipient, error) {
	rows, err := s.Users.All()
	if err != nil {
		return nil, err
	}

	var recipients []Recipient
	for _, row := range rows {
		if strings.TrimSpace(row.Topic) == "" {
			continue
		}

		recipients = append(recipients, Recipient{
			// The registry has no display name, fall back to the mailbox
			Name:  strings.SplitN(row.Email, "@", 2)[0],
			Email: row.Email,
			Topic: row.Topic,
		})
	}

	return recipients, nil
}
