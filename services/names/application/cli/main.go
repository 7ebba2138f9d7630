package cli

import (
	"github.com/spf13/cobra"

	"github.com/ghuser/namesort/pkg/app"
	"github.com/ghuser/namesort/services/names/application/handlers"
	appsvcs "github.com/ghuser/namesort/services/names/application/services"
)

// NewRootCommand builds the namesort command on top of the Application container.
func NewRootCommand(a *app.Application) *cobra.Command {
	svcs := appsvcs.New(a)
	h := handlers.NewSortNamesHandler(svcs, a)

	cmd := &cobra.Command{
		Use:   "namesort [flags] <input-file>",
		Short: "Sort a list of names by last name, then given names",
		Long: `namesort reads one name per line ("given [given [given]] surname"),
sorts the list by surname and then by each given name, ignoring case,
prints the result and writes it to ` + appsvcs.OutputPath + ` in the
current directory.

Without --order (or SORT_ORDER) the direction is asked for on stdin.`,
		Example: `  namesort ./unsorted-names-list.txt
  namesort --order D ./unsorted-names-list.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          h.Execute,
	}
	if a.Config != nil {
		cmd.Version = a.Config.ServiceVersion
	}

	cmd.SetIn(a.Stdin)
	cmd.SetOut(a.Stdout)

	cmd.Flags().StringVarP(&h.Order, "order", "o", "",
		"sort direction, A (ascending) or D (descending); asks on stdin when empty")

	return cmd
}
