package main

import (
	"os"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	profile string
	noColor bool
}

func defaultProfile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "quotesync",
		Short: "Quote collection kept in step with a remote copy",
		Long: `quotesync keeps a local quote collection and reconciles it with a remote
copy. Run without a command to start the HTTP server and the periodic sync.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", defaultProfile(),
		"configuration profile, loaded from configs/<profile>.yaml")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddGroup(
		&cobra.Group{ID: "server", Title: "Server:"},
		&cobra.Group{ID: "quotes", Title: "Quotes:"},
	)

	root.AddCommand(
		newServeCommand(opts),
		newSyncCommand(opts),
		newRandomCommand(opts),
		newAddCommand(opts),
		newCategoriesCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newVersionCommand(),
	)

	return root
}
