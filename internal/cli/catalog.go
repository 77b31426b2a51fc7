package cli

import (
	"fmt"

	"czone-store/internal/product"
	"czone-store/internal/storefront"

	"github.com/spf13/cobra"
)

// NewCatalogCommand prints the catalog the store would open with.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the seed catalog",
		Long: `Print the products the storefront starts with: the built-in catalog, or
the YAML file named by --catalog-file / CATALOG_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			seed, err := product.LoadSeedFile(cfg.CatalogFile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), storefront.NewRenderer(false).Catalog(seed))
			return err
		},
	}
}
