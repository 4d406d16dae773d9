package search

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/papers"
)

const topK = 10

// Builder materializes per-topic search results as JSON artifact files, the
// documents the papers service serves. It is the offline half of the papers
// endpoint.
type Builder struct {
	searcher *Searcher
	dir      string

	logger log.Logger
}

func NewBuilder(searcher *Searcher, dir string, logger log.Logger) *Builder {
	return &Builder{
		searcher: searcher,
		dir:      dir,
		logger:   logger,
	}
}

// Build writes one artifact per topic. A topic that fails is logged and
// skipped, the remaining topics are still built.
func (b *Builder) Build(ctx context.Context, topics []string) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return err
	}

	for _, topic := range topics {
		if err := b.build(ctx, topic); err != nil {
			b.logger.Errorf("could not build artifact for topic %q: %v", topic, err)
			continue
		}
		b.logger.Printf("artifact built for topic %q", topic)
	}
	return nil
}

func (b *Builder) build(ctx context.Context, topic string) error {
	results, err := b.searcher.Search(ctx, topic, topK)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	filename := papers.Slug(topic) + ".json"
	return ioutil.WriteFile(filepath.Join(b.dir, filename), data, 0644)
}
