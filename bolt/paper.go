package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	paperwatch "github.com/tranhoang77/HybridRAG-paper-recommendation-system"
)

// PaperStore persists papers keyed by arXiv id.
type PaperStore struct {
	Driver *Driver
}

func (s *PaperStore) Get(ids ...string) ([]*paperwatch.Paper, error) {
	papers := make([]*paperwatch.Paper, 0, len(ids))
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paperBucket)

		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}

			var paper paperwatch.Paper
			if err := json.Unmarshal(data, &paper); err != nil {
				return err
			}
			papers = append(papers, &paper)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return papers, nil
}

func (s *PaperStore) Upsert(paper *paperwatch.Paper) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paperBucket)

		data, err := json.Marshal(paper)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(paper.ArxivID), data)
	})
}

func (s *PaperStore) List() ([]*paperwatch.Paper, error) {
	var papers []*paperwatch.Paper

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paperBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var paper paperwatch.Paper
			if err := json.Unmarshal(data, &paper); err != nil {
				return err
			}
			papers = append(papers, &paper)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return papers, nil
}
