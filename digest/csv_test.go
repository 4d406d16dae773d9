package digest

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecipientFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "infor.csv")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVRecipientSource(t *testing.T) {
	path := writeRecipientFile(t, "Name,email,topic\nAlice,alice@paperwatch.io,3D Object Detection\nBob,bob@paperwatch.io,NeRF\n")

	source := NewCSVRecipientSource(path)
	recipients, err := source.Recipients()
	require.NoError(t, err)

	assert.Equal(t, []Recipient{
		{Name: "Alice", Email: "alice@paperwatch.io", Topic: "3D Object Detection"},
		{Name: "Bob", Email: "bob@paperwatch.io", Topic: "NeRF"},
	}, recipients)
}

func TestCSVRecipientSource_MissingColumn(t *testing.T) {
	path := writeRecipientFile(t, "Name,email\nAlice,alice@paperwatch.io\n")

	_, err := NewCSVRecipientSource(path).Recipients()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "topic"`)
}

func TestCSVRecipientSource_MissingFile(t *testing.T) {
	_, err := NewCSVRecipientSource(filepath.Join(t.TempDir(), "nope.csv")).Recipients()
	require.Error(t, err)
}
