package main

import (
	"github.com/spf13/cobra"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/papers"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/users"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/web"
)

func init() {
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Serve the registration and topic API",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		srv := web.NewServer(logger)

		users.RegisterHTTP(srv, userService)
		papers.RegisterHTTP(srv, paperService)

		addr := cfg.HTTP.Addr
		if addr == "" {
			addr = ":8077"
		}
		if err := srv.Run(addr); err != nil {
			logger.Fatalf("server stopped: %v", err)
		}
	},
}
