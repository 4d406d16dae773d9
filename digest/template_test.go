package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

func TestRenderDigest_MissingFields(t *testing.T) {
	r := Recipient{Name: "Alice", Email: "alice@paperwatch.io", Topic: "AI"}
	papers := []paperwatch.Paper{
		{Title: "A paper with nothing else"},
	}

	body, err := renderDigest(r, papers)
	require.NoError(t, err)

	// Absent novelty, summary and link render as N/A, the block is never
	// dropped
	assert.Contains(t, body, "1. A paper with nothing else")
	assert.Contains(t, body, "<strong>Novelty:</strong> N/A")
	assert.Contains(t, body, "<strong>Summary:</strong><br>N/A")
	assert.Contains(t, body, `href="N/A"`)
}

func TestRenderDigest_MarkdownSummary(t *testing.T) {
	r := Recipient{Name: "Alice", Topic: "AI"}
	papers := []paperwatch.Paper{
		{Title: "T", Summary: "A **bold** claim."},
	}

	body, err := renderDigest(r, papers)
	require.NoError(t, err)
	assert.Contains(t, body, "<strong>bold</strong>")
}

func TestRenderDigest_EscapesUserContent(t *testing.T) {
	r := Recipient{Name: "<script>alert(1)</script>", Topic: "AI"}

	body, err := renderDigest(r, nil)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
}

func TestMailerMessage(t *testing.T) {
	m := &Mailer{host: "smtp.gmail.com", port: 587, username: "bot@paperwatch.io", password: "pw"}

	msg, err := m.message("alice@paperwatch.io", "New papers for you", "<html><body>hi</body></html>")
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "From: bot@paperwatch.io\r\n")
	assert.Contains(t, s, "To: alice@paperwatch.io\r\n")
	assert.Contains(t, s, "Subject: New papers for you\r\n")
	assert.Contains(t, s, "Content-Type: multipart/alternative")
	assert.Contains(t, s, `text/html; charset="UTF-8"`)
	assert.Contains(t, s, "<html><body>hi</body></html>")
}

func TestNewMailer_RequiresCredentials(t *testing.T) {
	_, err := NewMailer("smtp.gmail.com", 587, "", "")
	require.Error(t, err)

	_, err = NewMailer("smtp.gmail.com", 587, "bot@paperwatch.io", "pw")
	require.NoError(t, err)
}
