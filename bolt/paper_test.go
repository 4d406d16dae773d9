package bolt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

func TestPaperStore(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	store := &PaperStore{Driver: driver}

	papers := []*paperwatch.Paper{
		{
			ArxivID: "1512.02325",
			Title:   "SSD: Single Shot MultiBox Detector",
			Summary: "We present a method for detecting objects in images.",
			PDFURL:  "http://arxiv.org/pdf/1512.02325v5",
		},
		{
			ArxivID: "2003.08934",
			Title:   "NeRF: Representing Scenes as Neural Radiance Fields",
			Tags:    []string{"Computer Science - Computer Vision and Pattern Recognition"},
		},
	}
	for _, paper := range papers {
		require.NoError(t, store.Upsert(paper))
	}

	// Get by ids, unknown ids skipped
	got, err := store.Get("1512.02325", "0000.00000")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *papers[0], *got[0])

	// Update
	papers[0].Novelty = "First single-shot detector competitive with region proposals."
	require.NoError(t, store.Upsert(papers[0]))
	got, err = store.Get("1512.02325")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, papers[0].Novelty, got[0].Novelty)

	// List
	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
