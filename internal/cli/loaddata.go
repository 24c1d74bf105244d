package cli

import (
	"fmt"

	"sheet-music-backend/internal/database"
	"sheet-music-backend/internal/seed"

	"github.com/spf13/cobra"
)

// NewLoadDataCommand creates the loaddata command
func NewLoadDataCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "loaddata [data-dir]",
		Short: "Load groups and sheet music from YAML files",
		Long: `Load groups and sheet music from the YAML files in data-dir (default scripts/data).

Existing groups are matched by name and existing sheet music by title, so running
the command again creates nothing new.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir := "scripts/data"
			if len(args) == 1 {
				dataDir = args[0]
			}

			data, err := seed.LoadDir(dataDir)
			if err != nil {
				return err
			}
			db, err := rootOpts.open()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			result, err := seed.Apply(db, data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Groups: %d created, %d total\n", result.GroupsCreated, result.GroupsTotal)
			fmt.Fprintf(cmd.OutOrStdout(), "Sheet music: %d created, %d total\n", result.SheetMusicCreated, result.SheetMusicTotal)
			return nil
		},
	}
}
