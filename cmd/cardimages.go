/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ygofr/ygosync/internal/config"
	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/images"
)

// cardImagesCmd represents the card-images command
var cardImagesCmd = &cobra.Command{
	Use:   "card-images <cards.json>",
	Short: "Download card images for every id in a dataset file",
	Long: `Read a cards file (a list of cards, or a single card object) and
download the full-size illustration for each id from the YGOPRODeck CDN.
Images already on disk are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCardImages(cfgFile, args[0])
	},
}

func init() {
	rootCmd.AddCommand(cardImagesCmd)

	cardImagesCmd.Flags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)
}

func runCardImages(configPath, inputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ids, err := dataset.CardIDs(inputPath)
	if err != nil {
		return fmt.Errorf("read card ids: %w", err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no card ids found in %s", inputPath)
	}
	fmt.Printf("Found %d cards.\n", len(ids))

	downloader := images.NewDownloader(cfg.Images, cfg.Data.Root, cfg.API.Timeout)
	ctx := context.Background()

	ok := 0
	for _, id := range ids {
		if err := downloader.CardImageByID(ctx, id); err != nil {
			log.Printf("Warning: card %s: %v", id, err)
			continue
		}
		ok++
	}

	fmt.Printf("\nDone: %d/%d images downloaded.\n", ok, len(ids))
	return nil
}
