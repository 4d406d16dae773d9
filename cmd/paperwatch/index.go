package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/arxiv"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bleve"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bolt"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/search"
)

var indexLimit int

func init() {
	IndexCommand.Flags().IntVar(&indexLimit, "limit", 25, "papers fetched from arXiv per topic")
	RootCmd.AddCommand(&IndexCommand)
}

// IndexCommand is the offline job: fetch recent papers for every registered
// topic, store and index them, then materialize the per-topic artifacts the
// papers endpoint serves.
var IndexCommand = cobra.Command{
	Use:   "index [topics...]",
	Short: "Fetch, index and build per-topic artifacts",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		topics := args
		if len(topics) == 0 {
			var err error
			topics, err = registeredTopics()
			if err != nil {
				logger.Fatalf("could not list topics: %v", err)
			}
		}
		if len(topics) == 0 {
			logger.Print("no topics to index")
			return
		}

		store := &bolt.PaperStore{Driver: boltDriver}
		index := &bleve.PaperIndex{}
		if err := index.Open(cfg.Bleve.Store); err != nil {
			logger.Fatalf("could not open index: %v", err)
		}
		defer index.Close()

		spider := arxiv.NewSpider()
		for _, topic := range topics {
			res, err := spider.Search(ctx, topic, indexLimit, 0)
			if err != nil {
				logger.Errorf("could not fetch papers for topic %q: %v", topic, err)
				continue
			}

			for _, paper := range res.Papers {
				if err := store.Upsert(paper); err != nil {
					logger.Fatalf("could not store paper %s: %v", paper.ArxivID, err)
				}
				if err := index.Index(paper); err != nil {
					logger.Fatalf("could not index paper %s: %v", paper.ArxivID, err)
				}
			}
			logger.Printf("indexed %d papers for topic %q", len(res.Papers), topic)
		}

		searcher := &search.Searcher{Store: store, Index: index}
		builder := search.NewBuilder(searcher, cfg.Artifacts.Dir, logger)
		if err := builder.Build(ctx, topics); err != nil {
			logger.Fatalf("could not build artifacts: %v", err)
		}
	},
}

// registeredTopics collects the distinct topics across all users.
func registeredTopics() ([]string, error) {
	rows, err := userService.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var topics []string
	for _, row := range rows {
		topic := strings.TrimSpace(row.Topic)
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true
		topics = append(topics, topic)
	}
	return topics, nil
}
