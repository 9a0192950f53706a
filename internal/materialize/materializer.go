package materialize

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/images"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// Options control a materialization run.
type Options struct {
	// DryRun prints every decision without writing files or images.
	DryRun bool
	// SkipImages suppresses card and collection image downloads.
	SkipImages bool
	// SortByNumber orders the written files by printed card number.
	SortByNumber bool
	// CollectionID overrides the collection id recorded in the
	// collection-cards file; defaults to the uppercase set code.
	CollectionID string
}

// Result reports what materializing one set produced.
type Result struct {
	Processed       bool
	WroteArchetypes bool
}

// Materializer turns remote sets into dataset files and images.
type Materializer struct {
	client *ygoprodeck.Client
	store  *dataset.Store
	images *images.Downloader
	opts   Options

	// lastArchetypeID is read from disk once per run and advanced in
	// memory; archetype names are re-read per set so a set sees the
	// archetypes written just before it.
	lastArchetypeID int
}

func NewMaterializer(client *ygoprodeck.Client, store *dataset.Store, dl *images.Downloader, opts Options) *Materializer {
	return &Materializer{
		client:          client,
		store:           store,
		images:          dl,
		opts:            opts,
		lastArchetypeID: store.MaxArchetypeID(),
	}
}

// MaterializeSet fetches, reshapes and persists one remote set under the
// given file code. Failures are logged and reported through the Result; a
// failed set never stops the caller's loop.
func (m *Materializer) MaterializeSet(ctx context.Context, set ygoprodeck.CardSet, code string) Result {
	code = strings.ToLower(code)
	fmt.Printf("Processing set %s (%s)\n", set.SetCode, set.SetName)

	cards, err := m.client.SetCards(ctx, set.SetName)
	if err != nil {
		log.Printf("Warning: fetch cards for %q: %v", set.SetName, err)
		return Result{}
	}
	if len(cards) == 0 {
		fmt.Printf("No cards found for set %s, skipping.\n", set.SetName)
		return Result{}
	}
	fmt.Printf("Got %d cards.\n", len(cards))

	if cover := strings.TrimSpace(set.SetImage); cover != "" {
		m.downloadCover(ctx, code, cover)
	}

	newArchetypes := ExtractArchetypes(cards, m.store.ArchetypeNames(), m.lastArchetypeID)
	if len(newArchetypes) > 0 {
		m.lastArchetypeID = newArchetypes[len(newArchetypes)-1].ID
	}

	localCards := ReshapeCards(cards)
	collection := BuildCollection(set, code, time.Now())
	collectionCards := BuildCollectionCards(cards, code, m.opts.CollectionID)

	if m.opts.DryRun {
		m.printDryRun(code, cards, collectionCards, newArchetypes)
		return Result{Processed: true, WroteArchetypes: len(newArchetypes) > 0}
	}

	if m.opts.SortByNumber {
		localCards, collectionCards = SortByPrintedNumber(localCards, collectionCards)
	}

	wroteArchetypes := false
	if len(newArchetypes) > 0 {
		if err := dataset.WriteJSON(m.store.Path(dataset.ArchetypesDir, code), newArchetypes); err != nil {
			log.Printf("Warning: %v", err)
			return Result{}
		}
		wroteArchetypes = true
		fmt.Printf("Saved %d new archetypes to %s\n", len(newArchetypes), m.store.Path(dataset.ArchetypesDir, code))
	}

	if err := dataset.WriteJSON(m.store.Path(dataset.CollectionsDir, code), collection); err != nil {
		log.Printf("Warning: %v", err)
		return Result{WroteArchetypes: wroteArchetypes}
	}
	if err := dataset.WriteJSON(m.store.Path(dataset.CardsDir, code), localCards); err != nil {
		log.Printf("Warning: %v", err)
		return Result{WroteArchetypes: wroteArchetypes}
	}
	if len(collectionCards) > 0 {
		if err := dataset.WriteJSON(m.store.Path(dataset.CollectionCardsDir, code), collectionCards); err != nil {
			log.Printf("Warning: %v", err)
			return Result{WroteArchetypes: wroteArchetypes}
		}
	}
	fmt.Printf("Saved %d cards to %s\n", len(localCards), m.store.Path(dataset.CardsDir, code))

	if !m.opts.SkipImages {
		m.downloadCardImages(ctx, cards)
	}

	return Result{Processed: true, WroteArchetypes: wroteArchetypes}
}

func (m *Materializer) downloadCover(ctx context.Context, code, coverURL string) {
	if m.opts.DryRun {
		fmt.Printf("[dry-run] would download collection image %s\n", coverURL)
		return
	}
	if m.opts.SkipImages {
		return
	}
	if err := m.images.CollectionImage(ctx, code, coverURL); err != nil {
		log.Printf("Warning: collection image %s: %v", code, err)
	}
}

func (m *Materializer) downloadCardImages(ctx context.Context, cards []ygoprodeck.Card) {
	for _, c := range cards {
		if len(c.CardImages) == 0 {
			continue
		}
		if err := m.images.CardImage(ctx, strconv.Itoa(c.ID), c.CardImages[0].ImageURL); err != nil {
			log.Printf("Warning: card image %d: %v", c.ID, err)
		}
	}
}

// printDryRun narrates the decisions a real run would have made.
func (m *Materializer) printDryRun(code string, cards []ygoprodeck.Card, collectionCards []dataset.CollectionCard, newArchetypes []dataset.Archetype) {
	for i, cc := range collectionCards {
		name := ""
		if i < len(cards) {
			name = cards[i].Name
		}
		fmt.Printf("  #%03d %-40s -> %s\n", i+1, name, cc.ID)
	}

	if len(newArchetypes) > 0 {
		names := make([]string, 0, len(newArchetypes))
		for _, a := range newArchetypes {
			names = append(names, fmt.Sprintf("%s (%d)", a.NameEn, a.ID))
		}
		fmt.Printf("[dry-run] would save archetypes %s to %s\n", strings.Join(names, ", "), m.store.Path(dataset.ArchetypesDir, code))
	}
	fmt.Printf("[dry-run] would save %s\n", m.store.Path(dataset.CollectionsDir, code))
	fmt.Printf("[dry-run] would save %d cards to %s\n", len(cards), m.store.Path(dataset.CardsDir, code))
	if len(collectionCards) > 0 {
		fmt.Printf("[dry-run] would save %s\n", m.store.Path(dataset.CollectionCardsDir, code))
	}
	if !m.opts.SkipImages {
		fmt.Printf("[dry-run] would download %d card images\n", len(cards))
	}
}
