package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ygofr/ygosync/internal/config"
	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/images"
	"github.com/ygofr/ygosync/internal/manifest"
	"github.com/ygofr/ygosync/internal/materialize"
	"github.com/ygofr/ygosync/internal/sync"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

var (
	cfgFile    string
	maxSets    int
	dryRun     bool
	skipImages bool
)

var rootCmd = &cobra.Command{
	Use:   "ygosync",
	Short: "Synchronise the local card dataset with the YGOPRODeck API",
	Long: `ygosync compares the YGOPRODeck set catalog against the local dataset,
fetches every set that has no local data file yet, and writes its
collection, cards, collection-cards and archetypes files, updating the
manifest and downloading card images along the way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cfgFile, maxSets, dryRun, skipImages)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)

	rootCmd.Flags().IntVarP(
		&maxSets,
		"max-sets",
		"n",
		0,
		"maximum number of new sets to process (0 = no limit)",
	)

	rootCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"print what would be done without writing anything",
	)

	rootCmd.Flags().BoolVar(
		&skipImages,
		"skip-images",
		false,
		"do not download card or collection images",
	)
}

func runSync(configPath string, maxSets int, dryRun, skipImages bool) (err error) {
	// A failure in one set is logged and skipped; anything unanticipated
	// ends the run gracefully instead of crashing it.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sync aborted: %v\n%s", r, debug.Stack())
			err = nil
		}
	}()

	runID := uuid.New().String()[:8]
	fmt.Printf("--- Sync %s ---\n", runID)
	if dryRun {
		fmt.Println("Dry run: nothing will be written.")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := dataset.NewStore(cfg.Data.Root)
	client := ygoprodeck.NewClient(cfg.API)
	downloader := images.NewDownloader(cfg.Images, cfg.Data.Root, cfg.API.Timeout)
	ctx := context.Background()

	fmt.Println("--- Requesting card sets ---")

	remote, err := client.ListCardSets(ctx)
	if err != nil {
		log.Printf("Warning: %v", err)
		fmt.Println("No sets could be fetched, nothing to do.")
		return nil
	}
	fmt.Printf("Got %d sets from the API.\n", len(remote))

	known := store.KnownSetCodes()
	fmt.Printf("Found %d sets locally.\n", len(known))

	newSets := sync.Plan(known, remote)
	fmt.Printf("%d new sets detected.\n", len(newSets))
	if len(newSets) == 0 {
		return nil
	}

	if maxSets > 0 && len(newSets) > maxSets {
		newSets = newSets[:maxSets]
		fmt.Printf("Limiting to %d sets.\n", maxSets)
	}

	fmt.Println("--- Materializing sets ---")

	mat := materialize.NewMaterializer(client, store, downloader, materialize.Options{
		DryRun:     dryRun,
		SkipImages: skipImages || !cfg.Images.Enabled,
	})

	var processed, withArchetypes []string
	for _, ns := range newSets {
		res := mat.MaterializeSet(ctx, ns.Set, ns.Code)
		if !res.Processed {
			continue
		}
		processed = append(processed, ns.Code)
		if res.WroteArchetypes {
			withArchetypes = append(withArchetypes, ns.Code)
		}
	}

	if dryRun {
		fmt.Printf("\nDry run finished: %d sets would have been processed.\n", len(processed))
		return nil
	}

	if len(processed) > 0 {
		fmt.Println("--- Updating manifest ---")
		updateManifest(store, processed, withArchetypes)
	}

	fmt.Printf("\nSync finished: %d sets processed.\n", len(processed))
	return nil
}

// updateManifest loads, applies and saves the manifest. Failures are
// logged and reported, never fatal: the data files are already on disk
// and the next successful run repairs the manifest.
func updateManifest(store *dataset.Store, processed, withArchetypes []string) bool {
	m, err := manifest.Load(store.ManifestPath())
	if err != nil {
		log.Printf("Warning: load manifest: %v", err)
		return false
	}
	m.Apply(processed, withArchetypes, time.Now())
	if err := m.Save(store.ManifestPath()); err != nil {
		log.Printf("Warning: save manifest: %v", err)
		return false
	}
	fmt.Printf("Manifest now at version %s.\n", m.Version)
	return true
}
