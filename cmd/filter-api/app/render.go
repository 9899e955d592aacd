package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	v1 "github.com/ktane-web/filter-server/internal/api/v1"
	filterapp "github.com/ktane-web/filter-server/internal/app"
	"github.com/ktane-web/filter-server/internal/service"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the filters of a group",
		Long: `Render prints the filters of a group to standard output without starting
the server, in one of three formats:

  html  the localized filter panel fragment (default)
  json  the filter descriptors as served by /api/v1/filters
  js    the descriptor script as served by /api/v1/filters.js`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}
	addConfigFlag(cmd)
	cmd.Flags().String("group", "", "Filter group (primary, secondary or all)")
	cmd.Flags().String("lang", "", "Language of the html fragment")
	cmd.Flags().String("format", "html", "Output format (html, json or js)")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	group, err := cmd.Flags().GetString("group")
	if err != nil {
		return fmt.Errorf("failed to get group flag: %w", err)
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "html" && format != "json" && format != "js" {
		return fmt.Errorf("unsupported format %q: must be html, json or js", format)
	}

	cfg, err := loadConfigFlag(cmd)
	if err != nil {
		return err
	}
	filterApp, err := filterapp.NewFilterApp(ctx, filterapp.WithConfig(cfg))
	if err != nil {
		return err
	}

	body, err := render(ctx, filterApp.GetComponents().FilterService, format, group, lang)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	// Keep the shell prompt on its own line
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !bytes.HasSuffix(body, []byte("\n")) {
		_, err = fmt.Fprintln(out)
	}
	return err
}

func render(ctx context.Context, svc service.FilterService, format, group, lang string) ([]byte, error) {
	if format == "html" {
		var opts []service.Option
		if lang != "" {
			opts = append(opts, service.WithLanguages(lang))
		}
		fragment, err := svc.RenderFilters(ctx, group, opts...)
		if err != nil {
			return nil, err
		}
		slog.Debug("Rendered filters", "group", group, "language", fragment.Language)
		return fragment.HTML, nil
	}

	descriptors, err := svc.Descriptors(ctx, group)
	if err != nil {
		return nil, err
	}
	if format == "js" {
		return v1.Script(descriptors), nil
	}
	body, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptors: %w", err)
	}
	return append(body, '\n'), nil
}
