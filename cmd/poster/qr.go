package main

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"

	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/util"
)

func newQRCmd() *cobra.Command {
	var (
		size   int
		output string
		share  bool
	)
	cmd := &cobra.Command{
		Use:   "qr <text>",
		Short: "Write a QR code PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fg, bg color.Color = color.Black, color.White
			if share {
				fg, bg = imagepkg.ShareQRForeground, imagepkg.ShareQRBackground
			}
			b, err := imagepkg.GenerateStyledQRPNG(args[0], size, fg, bg)
			if err != nil {
				return err
			}
			if err := util.WriteFileAtomic(output, b); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 400, "image size in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "qr.png", "output PNG path")
	cmd.Flags().BoolVar(&share, "share", false, "use the story share colours")
	return cmd
}
