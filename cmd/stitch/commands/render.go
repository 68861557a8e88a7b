package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

var errPageFlagsWithoutPage = zerr.New("page flags need --template or --target")

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured html pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := renderOptions(cmd)
			if err != nil {
				return err
			}

			results, err := c.app.Render(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, res := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.Checksum, res.Path)
			}
			return nil
		},
	}

	cmd.Flags().String("manifest", "", "Path to the bundle manifest")
	cmd.Flags().String("dir", "", "Bundler output directory")
	cmd.Flags().String("file", "", "Bundler output file, used when --dir is empty")
	cmd.Flags().String("template", "", "Render a single page from this template instead of the configured pages")
	cmd.Flags().String("target", "", "Output file or path of the single page")
	cmd.Flags().String("prefix", "", "Prefix for every injected url of the single page")
	cmd.Flags().StringArray("attr", nil, "Attribute for the injected script tags (repeatable)")
	cmd.Flags().StringArray("var", nil, "Literal KEY=VALUE replacement applied to the template (repeatable, in order)")
	cmd.Flags().IntP("jobs", "j", 0, "Number of pages rendered in parallel (defaults to the number of CPUs)")

	return cmd
}

func renderOptions(cmd *cobra.Command) (app.RenderOptions, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	manifest, _ := flags.GetString("manifest")
	dir, _ := flags.GetString("dir")
	file, _ := flags.GetString("file")
	template, _ := flags.GetString("template")
	target, _ := flags.GetString("target")
	prefix, _ := flags.GetString("prefix")
	attrs, _ := flags.GetStringArray("attr")
	rawVars, _ := flags.GetStringArray("var")
	jobs, _ := flags.GetInt("jobs")

	opts := app.RenderOptions{
		ConfigPath:  configPath,
		Manifest:    manifest,
		Output:      domain.OutputOptions{Dir: dir, File: file},
		Concurrency: jobs,
	}

	vars, err := parseVars(rawVars)
	if err != nil {
		return app.RenderOptions{}, err
	}

	if template == "" && target == "" {
		if prefix != "" || len(attrs) > 0 || len(vars) > 0 {
			return app.RenderOptions{}, errPageFlagsWithoutPage
		}
		return opts, nil
	}

	opts.Page = &domain.RenderConfig{
		Template:    template,
		Target:      target,
		Prefix:      prefix,
		Attrs:       attrs,
		ReplaceVars: vars,
	}
	return opts, nil
}

// parseVars splits KEY=VALUE pairs at the first '='. Values may contain '='.
func parseVars(raw []string) ([]domain.Substitution, error) {
	vars := make([]domain.Substitution, 0, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidVariable, "invalid --var"), "var", kv)
		}
		vars = append(vars, domain.Substitution{Pattern: key, Replacement: value})
	}
	return vars, nil
}
