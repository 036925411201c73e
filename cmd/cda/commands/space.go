package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSpaceCommand creates the space command.
func NewSpaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Short: "Show the targeted space",
		Long:  "Fetch the space the client is scoped to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			space, err := client.Spaces().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get space: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(space)
			case OutputFormatYAML:
				return renderYAML(space)
			default:
				fmt.Printf("%s (%s)\n", space.Name, space.Sys.ID)

				if len(space.Locales) == 0 {
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Locale", "Name", "Default")

				for _, locale := range space.Locales {
					_ = table.Append(locale.Code, locale.Name, strconv.FormatBool(locale.Default))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}
