package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/litkit"
	"github.com/vango-dev/litkit/internal/config"
	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/gallery"
)

func renderCmd(configDir *string) *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gallery as static HTML",
		Long: `Render the widget gallery to index.html.

The output directory defaults to render.output from the config file.

Examples:
  litkit render
  litkit render --out=public --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Render.Output = output
			}
			if pretty {
				cfg.Render.Pretty = true
			}

			path, err := renderGallery(cfg.OutputPath(), cfg, cmd)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the generated HTML")

	return cmd
}

func renderGallery(dir string, cfg *config.Config, cmd *cobra.Command) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.New("E160").Wrap(err)
	}
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.New("E160").Wrap(err)
	}
	defer f.Close()

	app := litkit.New(litkit.Config{Logger: newLogger(cfg, cmd.ErrOrStderr())})
	defer app.Close()

	page, err := gallery.New(app, cfg)
	if err != nil {
		return "", err
	}
	if err := page.Render(f); err != nil {
		return "", errors.New("E160").Wrap(err)
	}
	return path, f.Close()
}
