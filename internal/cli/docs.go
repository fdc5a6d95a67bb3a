package cli

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/store"
)

// docsCommand creates the docs command group for managing stored documents.
func (c *CLI) docsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage documents in the configured store",
		Long: `Docs manages layout documents in the configured store backend
(file, memory, redis, or mongo; see the config file). Documents are
saved with their relative descriptions only and re-resolved on load.`,
	}

	cmd.AddCommand(c.docsListCommand())
	cmd.AddCommand(c.docsShowCommand())
	cmd.AddCommand(c.docsSaveCommand())
	cmd.AddCommand(c.docsExportCommand())
	cmd.AddCommand(c.docsDeleteCommand())

	return cmd
}

// withStore loads the config, opens the configured store, runs fn, and
// closes the store afterwards.
func (c *CLI) withStore(cmd *cobra.Command, fn func(st store.Store) error) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	return fn(st)
}

// docsListCommand creates the "docs list" subcommand.
func (c *CLI) docsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored document ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(st store.Store) error {
				ids, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					printInfo("No documents stored")
					return nil
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			})
		},
	}
}

// docsShowCommand creates the "docs show" subcommand.
func (c *CLI) docsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print a stored document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(st store.Store) error {
				doc, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return docsError(err, args[0])
				}
				return document.Write(doc, os.Stdout)
			})
		},
	}
}

// docsSaveCommand creates the "docs save" subcommand.
func (c *CLI) docsSaveCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a document file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(st store.Store) error {
				doc, err := document.ImportFile(args[0])
				if err != nil {
					return err
				}
				if id != "" {
					doc.ID = id
				}
				if doc.ID == "" {
					return fmt.Errorf("document has no id: pass --id or set one in the file")
				}
				if err := st.Put(cmd.Context(), doc); err != nil {
					return err
				}
				printSuccess("Saved %s", docLabel(doc))
				printDetail("ID: %s", doc.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "store under this id instead of the document's own")
	return cmd
}

// docsExportCommand creates the "docs export" subcommand.
func (c *CLI) docsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a stored document to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(st store.Store) error {
				doc, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return docsError(err, args[0])
				}
				path := output
				if path == "" {
					path = doc.ID + ".json"
				}
				if err := document.ExportFile(doc, path); err != nil {
					return err
				}
				printSuccess("Exported %s", docLabel(doc))
				printFile(path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <id>.json)")
	return cmd
}

// docsDeleteCommand creates the "docs delete" subcommand.
func (c *CLI) docsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd, func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return docsError(err, args[0])
				}
				printSuccess("Deleted %s", args[0])
				return nil
			})
		},
	}
}

// docsError rewrites store errors with the document id for display.
func docsError(err error, id string) error {
	if goerrors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no document with id %s", id)
	}
	return err
}
