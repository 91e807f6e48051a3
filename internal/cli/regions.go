package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newRegionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions of the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.loadMap(cmd.Context())
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "PATHS", "POLYGONS").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, d := range m.Regions {
				t.Row(d.ID, d.Name, strconv.Itoa(len(d.Paths)), strconv.Itoa(len(d.Polygons)))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
