package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/seed"
)

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, validate and publish catalogs",
	}
	cmd.AddCommand(
		newCatalogValidateCmd(c),
		newCatalogSummaryCmd(c),
		newCatalogExportCmd(c),
		newCatalogPushCmd(c),
	)
	return cmd
}

// loadCatalog reads --file when given, otherwise the configured source.
func (c *cli) loadCatalog(cmd *cobra.Command, file string) (*seed.Catalog, error) {
	if file != "" {
		return seed.LoadFile(file)
	}
	catalog, err := bootstrap.LoadCatalog(cmd.Context(), c.cfg, c.logger)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return &seed.Catalog{}, nil
	}
	return catalog, nil
}

func newCatalogValidateCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a catalog into an empty registry and report every entry that fails",
		Long: `Load a catalog into an empty in-memory registry exactly as the server
does at startup and report every entry that cannot be applied.

Examples:
  registrarctl catalog validate --file catalogs/fall.yaml
  registrarctl catalog validate   # configured catalog source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			repos := repositories.NewRepositories()
			if err := seed.Apply(repos, catalog, c.logger); err != nil {
				return fmt.Errorf("catalog is invalid:\n%w", err)
			}
			s := catalog.Summary()
			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d courses, %d sections, %d professors, %d students\n",
				s.Courses, s.Sections, s.Professors, s.Students)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file")
	return cmd
}

func newCatalogSummaryCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print entity counts of a catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.Summary())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file")
	return cmd
}

func newCatalogExportCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog source as YAML",
		Long: `Write the configured catalog source (default, file or postgres) to
stdout as a catalog YAML file.

Examples:
  REGISTRAR_CATALOG_SOURCE=postgres registrarctl catalog export > catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(cmd, "")
			if err != nil {
				return err
			}
			out, err := catalog.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	return cmd
}

func newCatalogPushCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Validate a catalog and upsert it into the PostgreSQL catalog tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(cmd, file)
			if err != nil {
				return err
			}
			if err := seed.Apply(repositories.NewRepositories(), catalog, c.logger); err != nil {
				return fmt.Errorf("refusing to push an invalid catalog:\n%w", err)
			}

			database, err := db.NewPostgresDB(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := seed.StorePostgres(cmd.Context(), database, catalog); err != nil {
				return err
			}
			s := catalog.Summary()
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d courses, %d sections, %d professors, %d students\n",
				s.Courses, s.Sections, s.Professors, s.Students)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (default: configured source)")
	return cmd
}
