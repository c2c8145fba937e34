package main

import (
	"fmt"
	"os"

	"github.com/appdotbuilder/futura-blog/config"
	"github.com/appdotbuilder/futura-blog/database"
	"github.com/appdotbuilder/futura-blog/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/appdotbuilder/futura-blog/docs"
)

// @title Futura Blog API
// @version 1.0
// @description Public read side of the Futura blog: home page, post listing and post pages.

// @host localhost:8080
// @BasePath /

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "futura",
	Short: "Futura blog server",
	Long: `futura serves the public pages of the Futura blog.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if logger, err = logging.New(cfg); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// openDatabase connects and migrates. Every command needs the schema.
func openDatabase() (*gorm.DB, error) {
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, logger); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
