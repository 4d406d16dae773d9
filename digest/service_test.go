package digest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
)

type stubSource struct {
	recipients []Recipient
	err        error
}

func (s *stubSource) Recipients() ([]Recipient, error) {
	return s.recipients, s.err
}

type stubSearcher struct {
	papers map[string][]paperwatch.Paper
}

func (s *stubSearcher) Search(ctx context.Context, topic string, topK int) ([]paperwatch.Paper, error) {
	return s.papers[topic], nil
}

type recordingSender struct {
	sent    []string
	bodies  map[string]string
	failFor map[string]bool
}

func (s *recordingSender) Send(recipient, subject, htmlBody string) error {
	if s.failFor[recipient] {
		return errors.New("mailbox on fire")
	}
	s.sent = append(s.sent, recipient)
	if s.bodies == nil {
		s.bodies = make(map[string]string)
	}
	s.bodies[recipient] = htmlBody
	return nil
}

func TestService_Run(t *testing.T) {
	source := &stubSource{recipients: []Recipient{
		{Name: "Alice", Email: "alice@paperwatch.io", Topic: "3D Object Detection"},
		{Name: "Bob", Email: "bob@paperwatch.io", Topic: "NeRF"},
	}}
	searcher := &stubSearcher{papers: map[string][]paperwatch.Paper{
		"3D Object Detection": {
			{Title: "SSD: Single Shot MultiBox Detector", Summary: "Single shot detection.", Novelty: "No region proposals.", PDFURL: "http://arxiv.org/pdf/1512.02325v5"},
		},
	}}
	sender := &recordingSender{}

	s := NewService(source, searcher, sender, log.New("test"))
	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, []string{"alice@paperwatch.io", "bob@paperwatch.io"}, sender.sent)

	alice := sender.bodies["alice@paperwatch.io"]
	assert.Contains(t, alice, "Hello <strong>Alice</strong>!")
	assert.Contains(t, alice, "<em>3D Object Detection</em>")
	assert.Contains(t, alice, "1. SSD: Single Shot MultiBox Detector")
	assert.Contains(t, alice, "No region proposals.")
	assert.Contains(t, alice, `href="http://arxiv.org/pdf/1512.02325v5"`)

	// Bob's topic matched nothing, he still gets a digest saying so
	assert.Contains(t, sender.bodies["bob@paperwatch.io"], "No recent papers matched your topic.")
}

func TestService_Run_PartialFailure(t *testing.T) {
	source := &stubSource{recipients: []Recipient{
		{Name: "A", Email: "a@paperwatch.io", Topic: "AI"},
		{Name: "B", Email: "b@paperwatch.io", Topic: "AI"},
		{Name: "C", Email: "c@paperwatch.io", Topic: "AI"},
	}}
	sender := &recordingSender{failFor: map[string]bool{"b@paperwatch.io": true}}

	s := NewService(source, &stubSearcher{}, sender, log.New("test"))
	require.NoError(t, s.Run(context.Background()), "a failed send should not abort the batch")

	assert.Equal(t, []string{"a@paperwatch.io", "c@paperwatch.io"}, sender.sent)
}

func TestService_Run_SourceFailure(t *testing.T) {
	source := &stubSource{err: errors.New("no recipient file")}

	s := NewService(source, &stubSearcher{}, &recordingSender{}, log.New("test"))
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no recipient file"))
}
