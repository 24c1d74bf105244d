package cli

import (
	"fmt"

	"sheet-music-backend/internal/config"
	"sheet-music-backend/internal/database"
	"sheet-music-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	DatabaseDriver string
	DatabaseURL    string

	config *config.Config
	db     *gorm.DB
}

// NewRootCommand creates the root command of the management CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "manage",
		Short:         "Administrative tasks for the sheet music backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DatabaseDriver, "database-driver", "", "override DATABASE_DRIVER (postgres|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", "", "override DATABASE_URL")

	// Add subcommands
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewCreateUserCommand(opts, false))
	cmd.AddCommand(NewCreateUserCommand(opts, true))
	cmd.AddCommand(NewLoadDataCommand(opts))

	return cmd
}

// open loads the configuration and connects to the store once per invocation
func (o *RootOptions) open() (*gorm.DB, error) {
	if o.db != nil {
		return o.db, nil
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.DatabaseDriver != "" {
		cfg.DatabaseDriver = o.DatabaseDriver
	}
	if o.DatabaseURL != "" {
		cfg.DatabaseURL = o.DatabaseURL
	}
	logger.Setup(cfg.LogLevel, nil)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		Driver:      cfg.DatabaseDriver,
		LogLevel:    database.GormLogLevel(cfg.LogLevel),
		SkipMigrate: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	o.config = cfg
	o.db = db
	return db, nil
}

func (o *RootOptions) close() error {
	if o.db == nil {
		return nil
	}
	sqlDB, err := o.db.DB()
	if err != nil {
		return err
	}
	o.db = nil
	return sqlDB.Close()
}
