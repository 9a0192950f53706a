/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ygofr/ygosync/internal/config"
	"github.com/ygofr/ygosync/internal/images"
)

// collectionImageCmd represents the collection-image command
var collectionImageCmd = &cobra.Command{
	Use:   "collection-image <code> <url>",
	Short: "Download one collection cover image",
	Long: `Download a set cover from the given URL and store it under the
collection's code. An existing cover is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollectionImage(cfgFile, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(collectionImageCmd)

	collectionImageCmd.Flags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)
}

func runCollectionImage(configPath, code, srcURL string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	downloader := images.NewDownloader(cfg.Images, cfg.Data.Root, cfg.API.Timeout)
	if err := downloader.CollectionImage(context.Background(), code, srcURL); err != nil {
		return fmt.Errorf("collection image: %w", err)
	}

	fmt.Printf("Saved cover for %s.\n", code)
	return nil
}
