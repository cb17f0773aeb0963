package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/jashn/internal/celebration"
	"github.com/youruser/jashn/internal/session"
	"github.com/youruser/jashn/internal/store"
	"github.com/youruser/jashn/internal/util"
)

func newCelebrationCmd(root *rootOptions) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "celebration <file.json>",
		Short: "Export the poster for a saved celebration record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCelebration(cmd, root, args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "directory for the poster")
	return cmd
}

func runCelebration(cmd *cobra.Command, root *rootOptions, path, outDir string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	d := celebration.New("")
	if err := json.Unmarshal(b, d); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	st := store.NewMemoryStore()
	if err := st.Set(store.KeyCelebration, d); err != nil {
		return err
	}
	sess, err := session.Open(st, time.Now)
	if err != nil {
		return err
	}

	deps := session.ExportDeps{
		Images:    root.loader(),
		Quality:   root.jpegQuality(),
		MaxImages: root.cfg.Poster.MaxImages,
	}
	if svc := root.palettes(); svc != nil {
		deps.Palettes = svc
	}
	res, err := sess.Export(cmd.Context(), deps)
	if err != nil {
		return err
	}

	if err := util.EnsureDir(outDir); err != nil {
		return err
	}
	out := filepath.Join(outDir, res.Filename)
	if err := util.WriteFileAtomic(out, res.JPEG); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
