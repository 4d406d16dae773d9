package search

import (
	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

// Reindex rebuilds the keyword index from the paper store: every stored
// paper is indexed again, and entries whose paper is gone from the store
// are deleted from the index.
func Reindex(store paperwatch.PaperStore, index paperwatch.PaperIndex) (indexed, pruned int, err error) {
	papers, err := store.List()
	if err != nil {
		return 0, 0, err
	}

	known := make(map[string]bool, len(papers))
	for _, paper := range papers {
		if err := index.Index(paper); err != nil {
			return indexed, 0, err
		}
		indexed++
		known[paper.ArxivID] = true
	}

	res, err := index.Search(paperwatch.PaperSearch{Limit: 1})
	if err != nil {
		return indexed, 0, err
	}
	if res.Total > 0 {
		res, err = index.Search(paperwatch.PaperSearch{Limit: int(res.Total)})
		if err != nil {
			return indexed, 0, err
		}
	}

	for _, id := range res.IDs {
		if known[id] {
			continue
		}
		if err := index.Delete(id); err != nil {
			return indexed, pruned, err
		}
		pruned++
	}

	return indexed, pruned, nil
}
