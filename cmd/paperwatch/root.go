package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/bolt"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/log"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/papers"
	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/users"
)

var (
	// flags
	verbose bool
	env     string

	// logger
	logger log.Logger

	// configuration
	cfg Configuration

	// drivers
	boltDriver *bolt.Driver

	// services
	userService  *users.Service
	paperService *papers.Service
)

type Configuration struct {
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
	Artifacts struct {
		Dir string `toml:"dir"`
	} `toml:"artifacts"`
	Recipients struct {
		File string `toml:"file"`
	} `toml:"recipients"`
	SMTP struct {
		Host     string `toml:"host"`
		Port     int    `toml:"port"`
		Username string `toml:"username"`
		Password string `toml:"password"`
	} `toml:"smtp"`
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "paperwatch",
	Short: "Research paper digests by email",
	Long:  "",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := ioutil.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}
		overrideSMTPFromEnv(&cfg)

		// Create logger
		logger = log.New(env)

		// Create stores
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatalf("could not open bolt: %v", err)
		}

		// Create services
		userService = users.NewService(&bolt.UserStore{Driver: boltDriver})
		paperService = papers.NewService(cfg.Artifacts.Dir)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}

// overrideSMTPFromEnv lets the usual SMTP_* environment variables win over
// the configuration file, credentials rarely belong in a file on disk.
func overrideSMTPFromEnv(cfg *Configuration) {
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if username := os.Getenv("SMTP_USERNAME"); username != "" {
		cfg.SMTP.Username = username
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		cfg.SMTP.Password = password
	}
}
