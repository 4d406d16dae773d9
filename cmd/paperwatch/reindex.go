package main

import (
	"github.com/spf13/cobra"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bleve"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bolt"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/search"
)

func init() {
	RootCmd.AddCommand(&ReindexCommand)
}

// ReindexCommand rebuilds the search index from the paper store, after an
// index corruption or a mapping change.
var ReindexCommand = cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from the paper store",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		store := &bolt.PaperStore{Driver: boltDriver}
		index := &bleve.PaperIndex{}
		if err := index.Open(cfg.Bleve.Store); err != nil {
			logger.Fatalf("could not open index: %v", err)
		}
		defer index.Close()

		indexed, pruned, err := search.Reindex(store, index)
		if err != nil {
			logger.Fatalf("could not reindex: %v", err)
		}
		logger.Printf("reindexed %d papers, pruned %d stale entries", indexed, pruned)
	},
}
