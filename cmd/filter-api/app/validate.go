package app

import (
	"fmt"

	"github.com/spf13/cobra"

	filterapp "github.com/ktane-web/filter-server/internal/app"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration, catalog and translations",
		Long: `Validate loads the configuration, the module catalog and the translation
tables, declares the module filters and checks that an empty filter state
matches every module. Nothing is served.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
	addConfigFlag(cmd)
	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigFlag(cmd)
	if err != nil {
		return err
	}

	filterApp, err := filterapp.NewFilterApp(ctx, filterapp.WithConfig(cfg))
	if err != nil {
		return err
	}
	svc := filterApp.GetComponents().FilterService

	info, err := svc.CatalogInfo(ctx)
	if err != nil {
		return err
	}
	descriptors, err := svc.Descriptors(ctx, "")
	if err != nil {
		return err
	}
	result, err := svc.SearchModules(ctx, nil)
	if err != nil {
		return err
	}
	if result.Count != info.Modules {
		return fmt.Errorf("an empty filter state matched %d of %d modules", result.Count, info.Modules)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "catalog %s: %d modules, %d filters, default language %s\n",
		info.Version, info.Modules, len(descriptors), cfg.GetDefaultLanguage())
	return err
}
