package cli

import (
	"github.com/spf13/cobra"

	"czone-store/internal/shell"
)

// RootOptions holds the global flags. Non-empty values override the
// environment configuration.
type RootOptions struct {
	UsersFile   string
	CatalogFile string
	LogFile     string
}

// NewRootCommand creates the czone command. Without a subcommand it starts the
// interactive storefront.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "czone",
		Short: "C-ZONE storefront simulator",
		Long: `An interactive command-line storefront: browse the catalog, keep a cart,
check out orders and manage products as an admin.

Accounts persist to a text file between runs; products, carts and orders
live only for the session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.UsersFile, "users-file", "", "account record file (overrides USERS_FILE)")
	cmd.PersistentFlags().StringVar(&opts.CatalogFile, "catalog-file", "", "YAML catalog seed (overrides CATALOG_FILE)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "log output path (overrides LOG_FILE)")

	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewAccountsCommand(opts))

	return cmd
}

func runShell(cmd *cobra.Command, opts *RootOptions) error {
	a, err := newApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer a.close()

	sh := shell.New(a.store, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithClearScreen(a.cfg.ClearScreen),
		shell.WithColor(a.cfg.Colored()),
	)
	return sh.Run(cmd.Context())
}
