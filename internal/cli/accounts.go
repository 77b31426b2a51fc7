package cli

import (
	"fmt"
	"text/tabwriter"

	"czone-store/internal/user"

	"github.com/spf13/cobra"
)

// NewAccountsCommand lists the persisted accounts without their passwords.
func NewAccountsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			repo := user.NewFileRepository(cfg.UsersFile)
			if err := repo.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load accounts: %w", err)
			}

			users := repo.Users()
			if len(users) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No accounts.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tNAME")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s %s\n", u.ID, u.Username, u.Role, u.FirstName, u.LastName)
			}
			return w.Flush()
		},
	}
}
