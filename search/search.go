package search

import (
	"context"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

// Searcher answers topic queries from the local keyword index and hydrates
// the hits from the paper store. It stands behind the same interface as the
// external hybrid engine, so the digest job does not know which one it got.
type Searcher struct {
	Store paperwatch.PaperStore
	Index paperwatch.PaperIndex
}

func (s *Searcher) Search(ctx context.Context, topic string, topK int) ([]paperwatch.Paper, error) {
	res, err := s.Index.Search(paperwatch.PaperSearch{Q: topic, Limit: topK})
	if err != nil {
		return nil, err
	}

	stored, err := s.Store.Get(res.IDs...)
	if err != nil {
		return nil, err
	}

	papers := make([]paperwatch.Paper, len(stored))
	for i, paper := range stored {
		papers[i] = *paper
	}
	return papers, nil
}
