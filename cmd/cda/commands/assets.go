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

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Fetch assets",
		Long:    "Fetch media assets from the content delivery API",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var (
		order   string
		limit   int
		skip    int
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Long:  "List assets in the space, optionally filtered",
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

			if err := parseFilters(params, filters); err != nil {
				return err
			}

			assets, err := client.Assets().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(assets)
			case OutputFormatYAML:
				return renderYAML(assets)
			default:
				if len(assets.Items) == 0 {
					fmt.Println("No assets found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "File", "Content Type", "Size")

				for _, asset := range assets.Items {
					size := ""
					if asset.Fields.File.Details != nil {
						size = strconv.FormatInt(asset.Fields.File.Details.Size, 10)
					}

					_ = table.Append(
						asset.Sys.ID,
						asset.Fields.Title,
						asset.Fields.File.FileName,
						asset.Fields.File.ContentType,
						size,
					)
				}

				_ = table.Render()

				fmt.Printf("\nShowing %d of %d assets (skip %d)\n", len(assets.Items), assets.Total, assets.Skip)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "order attribute (prefix with '-' for descending)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of assets to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of assets to skip")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "additional filter as name=value (repeatable)")

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ASSET_ID",
		Short: "Get an asset",
		Long:  "Get a single asset by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			asset, err := client.Assets().Get(context.Background(), args[0])
			if err != nil {
				if cda.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrAssetNotFound, args[0])
				}

				return fmt.Errorf("failed to get asset: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return renderYAML(asset)
			default:
				return renderJSON(asset)
			}
		},
	}
}
