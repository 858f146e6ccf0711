package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"lightbox/internal/service"
)

var (
	cacheDirFlag string
	svc          *service.Container
)

func cliLogger(msg string) {
	log.Printf("[lightbox-cli] %s", msg)
}

// NewRootCmd creates the root command for the CLI application. It takes a
// function responsible for initializing the service container, so tests can
// point it at a temporary cache.
func NewRootCmd(getServices func(cacheDir string, logger service.LoggerFunc) (*service.Container, error)) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "lightbox-cli",
		Short: "Lightbox CLI - inspect albums and the thumbnail cache",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			svc, err = getServices(cacheDirFlag, cliLogger)
			if err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if svc != nil {
				svc.Close()
			}
		},
	}

	scanCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List the image files an album load would pick up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			photos, err := svc.FS.LoadPhotos(cmd.Context(), dir)
			if err != nil {
				return err
			}
			for _, p := range photos {
				cmd.Printf("%s (%d bytes)\n", p.Path, p.SizeBytes)
			}
			cmd.Printf("%d photos in %s\n", len(photos), dir)
			return nil
		},
	}
	rootCmd.AddCommand(scanCmd)

	var thumbSize int
	var thumbOut string
	thumbCmd := &cobra.Command{
		Use:   "thumb [image]",
		Short: "Generate a thumbnail for an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			img, err := svc.Images.Thumbnail(imagePath, thumbSize)
			if err != nil {
				return err
			}
			out := thumbOut
			if out == "" {
				ext := filepath.Ext(imagePath)
				out = strings.TrimSuffix(imagePath, ext) + "_thumb.png"
			}
			if err := imaging.Save(img, out); err != nil {
				return err
			}
			bounds := img.Bounds()
			cmd.Printf("Wrote %dx%d thumbnail to %s\n", bounds.Dx(), bounds.Dy(), out)
			return nil
		},
	}
	thumbCmd.Flags().IntVarP(&thumbSize, "size", "s", service.DefaultThumbnailSize, "Maximum thumbnail dimension in pixels")
	thumbCmd.Flags().StringVarP(&thumbOut, "out", "o", "", "Output path (defaults next to the input)")
	rootCmd.AddCommand(thumbCmd)

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the thumbnail cache",
	}

	cacheStatsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show thumbnail cache entry count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, bytes, err := svc.Cache.Stats()
			if err != nil {
				return err
			}
			cmd.Printf("%d entries, %d bytes\n", entries, bytes)
			return nil
		},
	}
	cacheCmd.AddCommand(cacheStatsCmd)

	cacheCleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete every cached thumbnail",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Cache.Clear(); err != nil {
				return err
			}
			cmd.Println("Cache cleared.")
			return nil
		},
	}
	cacheCmd.AddCommand(cacheCleanCmd)

	rootCmd.AddCommand(cacheCmd)

	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cachedir", "", "Path to the thumbnail cache directory")

	return rootCmd
}

func main() {
	rootCmd := NewRootCmd(service.NewContainer)
	rootCmd.SetContext(context.Background())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
