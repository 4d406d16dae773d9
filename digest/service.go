package digest

import (
	"context"

	cron "gopkg.in/robfig/cron.v2"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
)

const (
	spec = "0 0 8 * * *" // Daily at 8am
	// spec = "0 */2 * * * *" // Every 2 minutes. For dev

	subject = "New papers for you"
	topK    = 10
)

// Service is the notification batch: one search and one email per
// recipient, best effort, no run state.
type Service struct {
	source   RecipientSource
	searcher Searcher
	sender   Sender

	logger log.Logger
}

func NewService(source RecipientSource, searcher Searcher, sender Sender, logger log.Logger) *Service {
	return &Service{
		source:   source,
		searcher: searcher,
		sender:   sender,

		logger: logger,
	}
}

// Run executes one pass over all recipients. A recipient that fails, search
// or send, is logged and skipped: one bad mailbox never starves the rest of
// the batch. Only a failure to load the recipient list aborts the run.
func (s *Service) Run(ctx context.Context) error {
	recipients, err := s.source.Recipients()
	if err != nil {
		return err
	}

	for _, r := range recipients {
		papers, err := s.searcher.Search(ctx, r.Topic, topK)
		if err != nil {
			s.logger.Errorf("could not search topic %q for %s: %v", r.Topic, r.Email, err)
			continue
		}

		body, err := renderDigest(r, papers)
		if err != nil {
			s.logger.Errorf("could not render digest for %s: %v", r.Email, err)
			continue
		}

		if err := s.sender.Send(r.Email, subject, body); err != nil {
			s.logger.Errorf("could not send digest to %s: %v", r.Email, err)
			continue
		}

		s.logger.Printf("digest sent to %s for topic %q", r.Email, r.Topic)
	}

	return nil
}

// StartCron schedules Run daily. The scheduler assumes it is the only
// process running the batch: overlapping runs would duplicate sends.
func (s *Service) StartCron(ctx context.Context) {
	c := cron.New()
	c.AddFunc(spec, func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Errorf("could not run digest batch: %v", err)
		} else {
			s.logger.Print("successfully ran digest batch")
		}
	})
	c.Start()
}
