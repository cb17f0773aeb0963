package main

import (
	"github.com/spf13/cobra"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/config"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/util"
)

type rootOptions struct {
	configPath string
	logLevel   string
	autoStyle  bool
	quality    int

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "jashn-poster",
		Short:         "Render celebration posters and share codes offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "./configs/config.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	cmd.PersistentFlags().BoolVar(&opts.autoStyle, "auto-style", false, "ask the styling model for a palette")
	cmd.PersistentFlags().IntVarP(&opts.quality, "quality", "q", 0, "JPEG quality (1-100), defaults to the configured value")

	cmd.AddCommand(newRenderCmd(opts), newCelebrationCmd(opts), newQRCmd())
	return cmd
}

func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err := logger.Init(level, cfg.Log.Format); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// loader reads local files as well as URLs; the CLI runs on the user's
// own machine.
func (o *rootOptions) loader() *imagepkg.Loader {
	return &imagepkg.Loader{
		Client:          util.NewHTTPClient(o.cfg.Poster.DownloadTimeout),
		AllowLocalFiles: true,
	}
}

// palettes is nil unless --auto-style is set.
func (o *rootOptions) palettes() *ai.Service {
	if !o.autoStyle {
		return nil
	}
	return ai.NewService(o.cfg.OpenRouter)
}

func (o *rootOptions) jpegQuality() int {
	for _, q := range []int{o.quality, o.cfg.Poster.JPEGQuality} {
		if q > 0 && q <= 100 {
			return q
		}
	}
	return imagepkg.ExportQuality
}
