/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ygofr/ygosync/internal/config"
	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/images"
	"github.com/ygofr/ygosync/internal/match"
	"github.com/ygofr/ygosync/internal/materialize"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

var (
	setCode      string
	collectionID string
)

// fetchSetCmd represents the fetch-set command
var fetchSetCmd = &cobra.Command{
	Use:   "fetch-set <set name>",
	Short: "Fetch one set by name and write its dataset files",
	Long: `Fetch a single set from the YGOPRODeck API. The name is resolved
against the remote catalog (set codes and close spellings work too), and
the set's collection, cards and collection-cards files are written in
printed-number order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetchSet(cfgFile, args[0], setCode, collectionID, dryRun, skipImages)
	},
}

func init() {
	rootCmd.AddCommand(fetchSetCmd)

	fetchSetCmd.Flags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)

	fetchSetCmd.Flags().StringVar(
		&setCode,
		"code",
		"",
		"file code to store the set under (default: the set's code, lowercased)",
	)

	fetchSetCmd.Flags().StringVar(
		&collectionID,
		"collection-id",
		"",
		"collection id recorded in the collection-cards file (default: the file code, uppercased)",
	)

	fetchSetCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"print what would be done without writing anything",
	)

	fetchSetCmd.Flags().BoolVar(
		&skipImages,
		"skip-images",
		false,
		"do not download card or collection images",
	)
}

func runFetchSet(configPath, name, code, collectionID string, dryRun, skipImages bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := dataset.NewStore(cfg.Data.Root)
	client := ygoprodeck.NewClient(cfg.API)
	downloader := images.NewDownloader(cfg.Images, cfg.Data.Root, cfg.API.Timeout)
	ctx := context.Background()

	fmt.Println("--- Resolving set ---")

	remote, err := client.ListCardSets(ctx)
	if err != nil {
		return err
	}
	set, err := match.Resolve(name, remote)
	if err != nil {
		return err
	}
	fmt.Printf("Resolved %q to %s (%s).\n", name, set.SetName, set.SetCode)

	if code == "" {
		code = strings.ToLower(set.SetCode)
	}

	fmt.Println("--- Materializing set ---")

	mat := materialize.NewMaterializer(client, store, downloader, materialize.Options{
		DryRun:       dryRun,
		SkipImages:   skipImages || !cfg.Images.Enabled,
		SortByNumber: true,
		CollectionID: collectionID,
	})

	res := mat.MaterializeSet(ctx, set, code)
	if !res.Processed {
		return fmt.Errorf("set %q could not be materialized", set.SetName)
	}
	if dryRun {
		return nil
	}

	var withArchetypes []string
	if res.WroteArchetypes {
		withArchetypes = []string{strings.ToLower(code)}
	}
	updateManifest(store, []string{strings.ToLower(code)}, withArchetypes)
	return nil
}
