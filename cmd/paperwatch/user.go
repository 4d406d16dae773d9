package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user <email>",
	Short: "Inspect a registered user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user wants 1 argument: the email of the user")
		}

		user, err := userService.Get(args[0])
		if err != nil {
			logger.Fatal("error retrieving user:", err)
		}

		data, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			logger.Fatal("error marshalling user:", err)
		}
		fmt.Println(string(data))
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "Dump the whole registry as rows",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		rows, err := userService.All()
		if err != nil {
			logger.Fatal("error listing users:", err)
		}

		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			logger.Fatal("error marshalling rows:", err)
		}
		fmt.Println(string(data))
	},
}
