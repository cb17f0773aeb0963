package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/jashn/internal/ai"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/util"
)

type renderOptions struct {
	layout   string
	title    string
	subtitle string
	relation string
	term     string
	images   []string
	palette  string
	output   string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose a poster from explicit text and photos",
		Example: `  jashn-poster render --layout collage --title "Happy 25th Anniversary" \
    --subtitle "We love you" --image a.jpg --image b.jpg -o poster.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.layout, "layout", "l", string(imagepkg.LayoutCollage), "poster layout: collage or jayanti")
	f.StringVarP(&opts.title, "title", "t", "", "heading text")
	f.StringVarP(&opts.subtitle, "subtitle", "s", "", "message text")
	f.StringVar(&opts.relation, "relation", "", "name shown under the title")
	f.StringVar(&opts.term, "term", "", "small line under the name")
	f.StringArrayVarP(&opts.images, "image", "i", nil, "photo path, URL or data URL (repeatable)")
	f.StringVarP(&opts.palette, "palette", "p", "", "JSON file with palette colours")
	f.StringVarP(&opts.output, "output", "o", "poster.jpg", "output JPEG path")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	ctx := cmd.Context()
	layout, err := imagepkg.ParseLayout(opts.layout)
	if err != nil {
		return err
	}

	var palette imagepkg.Palette
	if opts.palette != "" {
		if palette, err = readPalette(opts.palette); err != nil {
			return err
		}
	} else if svc := root.palettes(); svc != nil {
		palette = svc.GeneratePalette(ctx, ai.PaletteKindFor(layout), ai.PaletteRequest{
			Occasion: opts.title,
			Name:     opts.relation,
			Message:  opts.subtitle,
			Quote:    opts.subtitle,
		})
	}

	content := imagepkg.Content{
		Title:        opts.title,
		Subtitle:     opts.subtitle,
		RelationName: opts.relation,
		TermLine:     opts.term,
		Images:       root.loader().Load(ctx, opts.images, root.cfg.Poster.MaxImages),
	}
	poster, err := imagepkg.Compose(imagepkg.NewSurface(), layout, content, palette)
	if err != nil {
		return err
	}
	b, err := imagepkg.EncodeJPEG(poster.Image, root.jpegQuality())
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(opts.output, b); err != nil {
		return err
	}
	logger.Infof("wrote %s (%d bytes, %d photos)", opts.output, len(b), len(content.Images))
	fmt.Fprintln(cmd.OutOrStdout(), opts.output)
	return nil
}

func readPalette(path string) (imagepkg.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	var p imagepkg.Palette
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	return p, nil
}
