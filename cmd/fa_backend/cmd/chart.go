package cmd

import (
	"fmt"
	"sort"

	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/SscSPs/fin_automation_app/internal/platform/chart"
	"github.com/spf13/cobra"
)

var chartFile string

// chartCmd prints the chart of accounts and the accounts bound to template roles.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the chart of accounts and its template roles",
	Long: `Print the chart of accounts that would be seeded into an empty store,
one label per line, followed by the account each journal template role uses.

Example:
  fa_backend chart
  fa_backend chart --file ./chart.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := chartFile
		if path == "" {
			path = cfg.ChartFile
		}
		def, err := chart.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Chart of Accounts ===")
		for _, acc := range def.Accounts {
			fmt.Fprintln(out, acc.Label())
		}

		roles := make([]string, 0, len(def.Roles))
		for role := range def.Roles {
			roles = append(roles, string(role))
		}
		sort.Strings(roles)

		fmt.Fprintln(out, "\n=== Template Roles ===")
		for _, role := range roles {
			fmt.Fprintf(out, "%-18s %s\n", role, def.Roles[domain.AccountRole(role)])
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartFile, "file", "", "chart YAML file (default is CHART_FILE or the embedded chart)")
}
