package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

// NewContentTypesCommand creates the content-types command group.
func NewContentTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "content-types",
		Aliases: []string{"content-type", "types"},
		Short:   "Fetch content types",
		Long:    "Fetch content type schemas from the content delivery API",
	}

	cmd.AddCommand(newContentTypesListCommand())
	cmd.AddCommand(newContentTypesGetCommand())

	return cmd
}

func newContentTypesListCommand() *cobra.Command {
	var (
		order string
		limit int
		skip  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content types",
		Long:  "List content type schemas defined in the space",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := cda.NewQueryParams()
			if order != "" {
				params.WithOrder(order)
			}

			if limit > 0 {
				params.WithLimit(limit)
			}

			if skip > 0 {
				params.WithSkip(skip)
			}

			contentTypes, err := client.ContentTypes().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list content types: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(contentTypes)
			case OutputFormatYAML:
				return renderYAML(contentTypes)
			default:
				if len(contentTypes.Items) == 0 {
					fmt.Println("No content types found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Display Field", "Fields", "Description")

				for _, contentType := range contentTypes.Items {
					_ = table.Append(
						contentType.Sys.ID,
						contentType.Name,
						contentType.DisplayField,
						strconv.Itoa(len(contentType.Fields)),
						contentType.Description,
					)
				}

				_ = table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "order attribute (prefix with '-' for descending)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of content types to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of content types to skip")

	return cmd
}

func newContentTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTENT_TYPE_ID",
		Short: "Get a content type",
		Long:  "Get a single content type schema by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			contentType, err := client.ContentTypes().Get(context.Background(), args[0])
			if err != nil {
				if cda.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrContentTypeNotFound, args[0])
				}

				return fmt.Errorf("failed to get content type: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(contentType)
			case OutputFormatYAML:
				return renderYAML(contentType)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Type", "Required", "Localized")

				for _, field := range contentType.Fields {
					_ = table.Append(
						field.ID,
						field.Type,
						strconv.FormatBool(field.Required),
						strconv.FormatBool(field.Localized),
					)
				}

				fmt.Printf("%s (%s)\n", contentType.Name, contentType.Sys.ID)

				if contentType.Description != "" {
					fmt.Println(contentType.Description)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}
