package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/domain"
)

// cliSession keys the last shown quote for commands run from a shell.
const cliSession = "cli"

// errSyncFailed is returned by the sync command so the process exits non-zero.
var errSyncFailed = errors.New("sync failed")

func newSyncCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   "Reconcile the local collection with the remote once",
		GroupID: "server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			result := rt.scheduler.RunNow(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pulled %d, pushed %d, push failures %d\n",
				result.Pulled, result.Pushed.Succeeded(), result.Pushed.Failed())

			if result.Status == domain.SyncFailed {
				return fmt.Errorf("%w: %s", errSyncFailed, result.Reason)
			}

			return nil
		},
	}
}

func newRandomCommand(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "random",
		Short:   "Show a random quote",
		GroupID: "quotes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.quotes.RandomQuote(ctx, cliSession, category)

			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "",
		"category to pick from, defaults to the saved filter")

	return cmd
}

func newAddCommand(opts *options) *cobra.Command {
	var text, category string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a quote to the local collection",
		Long:    "Add a quote to the local collection. It reaches the remote on the next sync.",
		GroupID: "quotes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			_, err = rt.quotes.AddQuote(ctx, text, category)

			return err
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "quote text")
	cmd.Flags().StringVarP(&category, "category", "c", "", "quote category")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newCategoriesCommand(opts *options) *cobra.Command {
	var selectCategory string

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   "List categories, optionally saving a new filter",
		GroupID: "quotes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Start draws the category list once the collection is loaded.
			rt, err := bootstrap(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			if selectCategory == "" {
				return nil
			}

			_, err = rt.quotes.SelectCategory(ctx, cliSession, selectCategory)

			return err
		},
	}

	cmd.Flags().StringVar(&selectCategory, "select", "", "save this category as the filter")

	return cmd
}

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		Short:   "Write the collection as JSON to a file or stdout",
		GroupID: "quotes",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := bootstrap(ctx, opts, nil)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			data, err := rt.transfer.Export(ctx)
			if err != nil {
				return fmt.Errorf("exporting quotes: %w", err)
			}

			if len(args) == 0 || args[0] == "-" {
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", args[0])

			return nil
		},
	}
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "import <file>",
		Short:   "Append quotes from a JSON file and push them to the remote",
		Long:    "Append quotes from a JSON file, or stdin when file is -, and push them to the remote.",
		Example: "  quotesync import " + app.ExportFilename,
		GroupID: "quotes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			rt, err := bootstrap(ctx, opts, nil)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			result, err := rt.transfer.Import(ctx, data)
			if err != nil {
				return fmt.Errorf("importing quotes: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d, pushed %d, push failures %d\n",
				result.Imported, result.Pushed.Succeeded(), result.Pushed.Failed())

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotesync %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return data, nil
}
