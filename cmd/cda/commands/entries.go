package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

// NewEntriesCommand creates the entries command group.
func NewEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Fetch entries",
		Long:    "Fetch entries from the content delivery API",
	}

	cmd.AddCommand(newEntriesListCommand())
	cmd.AddCommand(newEntriesGetCommand())

	return cmd
}

func newEntriesListCommand() *cobra.Command {
	var (
		contentType string
		order       string
		limit       int
		skip        int
		filters     []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Long:  "List entries in the space, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := cda.NewQueryParams()
			if contentType != "" {
				params.WithContentType(contentType)
			}

			if order != "" {
				params.WithOrder(order)
			}

			if limit > 0 {
				params.WithLimit(limit)
			}

			if skip > 0 {
				params.WithSkip(skip)
			}

			if err := parseFilters(params, filters); err != nil {
				return err
			}

			entries, err := client.Entries().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(entries)
			case OutputFormatYAML:
				return renderYAML(entries)
			default:
				if len(entries.Items) == 0 {
					fmt.Println("No entries found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Content Type", "Fields", "Created", "Updated")

				for _, entry := range entries.Items {
					contentTypeID := ""
					if entry.Sys.ContentType != nil {
						contentTypeID = entry.Sys.ContentType.Sys.ID
					}

					fieldIDs := make([]string, 0, len(entry.Fields))
					for id := range entry.Fields {
						fieldIDs = append(fieldIDs, id)
					}

					sort.Strings(fieldIDs)

					_ = table.Append(
						entry.Sys.ID,
						contentTypeID,
						fmt.Sprintf("%d", len(fieldIDs)),
						formatTimestamp(entry.Sys.CreatedAt),
						formatTimestamp(entry.Sys.UpdatedAt),
					)
				}

				_ = table.Render()

				fmt.Printf("\nShowing %d of %d entries (skip %d)\n", len(entries.Items), entries.Total, entries.Skip)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "filter by content type id")
	cmd.Flags().StringVar(&order, "order", "", "order attribute (prefix with '-' for descending)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "additional filter as name=value (repeatable)")

	return cmd
}

func newEntriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTRY_ID",
		Short: "Get an entry",
		Long:  "Get a single entry by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			entry, err := client.Entries().Get(context.Background(), args[0])
			if err != nil {
				if cda.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrEntryNotFound, args[0])
				}

				return fmt.Errorf("failed to get entry: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return renderYAML(entry)
			default:
				return renderJSON(entry)
			}
		},
	}
}
