package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bleve"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bolt"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/digest"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/search"
)

var (
	notifyCron      bool
	notifyFromStore bool
)

func init() {
	NotifyCommand.Flags().BoolVar(&notifyCron, "cron", false, "keep running and send digests on a daily schedule")
	NotifyCommand.Flags().BoolVar(&notifyFromStore, "from-store", false, "fan out over registered users instead of the recipient file")
	RootCmd.AddCommand(&NotifyCommand)
}

var NotifyCommand = cobra.Command{
	Use:   "notify",
	Short: "Send digest emails to all recipients",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		mailer, err := digest.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		if err != nil {
			logger.Fatal("could not create mailer:", err)
		}

		index := &bleve.PaperIndex{}
		if err := index.Open(cfg.Bleve.Store); err != nil {
			logger.Fatalf("could not open index: %v", err)
		}
		defer index.Close()

		searcher := &search.Searcher{
			Store: &bolt.PaperStore{Driver: boltDriver},
			Index: index,
		}

		var source digest.RecipientSource = digest.NewCSVRecipientSource(cfg.Recipients.File)
		if notifyFromStore {
			source = &digest.StoreRecipientSource{Users: userService}
		}

		service := digest.NewService(source, searcher, mailer, logger)

		ctx := context.Background()
		if !notifyCron {
			if err := service.Run(ctx); err != nil {
				logger.Fatalf("digest batch failed: %v", err)
			}
			return
		}

		service.StartCron(ctx)
		logger.Print("digest scheduler started")
		select {}
	},
}
