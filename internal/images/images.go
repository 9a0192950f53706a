package images

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/ygofr/ygosync/internal/config"
)

// Downloader fetches card and collection artwork and stores it as JPEG.
// Every download is content-addressed by identifier: an existing target
// file means the image is already there and no request is made.
type Downloader struct {
	client         *http.Client
	baseURL        string
	quality        int
	cardsDir       string
	collectionsDir string
}

// NewDownloader builds a Downloader from the images config. Relative
// directories are resolved against the dataset root.
func NewDownloader(cfg config.Images, root string, timeout time.Duration) *Downloader {
	quality := cfg.Quality
	if quality <= 0 {
		quality = config.DefaultQuality
	}
	return &Downloader{
		client:         &http.Client{Timeout: timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		quality:        quality,
		cardsDir:       resolveDir(root, cfg.CardsDir),
		collectionsDir: resolveDir(root, cfg.CollectionsDir),
	}
}

func resolveDir(root, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// CardURL returns the CDN location of a card's full-size image. The CDN
// strips leading zeros: card 07902349 lives at 7902349.jpg.
func (d *Downloader) CardURL(id string) string {
	clean := strings.TrimLeft(id, "0")
	if clean == "" {
		clean = "0"
	}
	return d.baseURL + "/" + clean + ".jpg"
}

// CardImage fetches one card illustration into cards-image/<id>.jpg.
func (d *Downloader) CardImage(ctx context.Context, id, srcURL string) error {
	return d.download(ctx, srcURL, filepath.Join(d.cardsDir, id+".jpg"))
}

// CardImageByID fetches a card illustration from the CDN by card id.
func (d *Downloader) CardImageByID(ctx context.Context, id string) error {
	return d.CardImage(ctx, id, d.CardURL(id))
}

// CollectionImage fetches a set cover into collections-image/<code>.jpg.
func (d *Downloader) CollectionImage(ctx context.Context, code, srcURL string) error {
	return d.download(ctx, srcURL, filepath.Join(d.collectionsDir, code+".jpg"))
}

// download is a no-op when dest already exists; otherwise it fetches,
// transcodes and writes the image.
func (d *Downloader) download(ctx context.Context, srcURL, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", srcURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %d", srcURL, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return fmt.Errorf("decode image %s: %w", srcURL, err)
	}

	return d.writeJPEG(dest, img)
}

// writeJPEG flattens transparency onto white and encodes at the configured
// quality. The encode goes to a temp file first; dest only ever holds a
// complete image.
func (d *Downloader) writeJPEG(dest string, img image.Image) error {
	tmp := dest + "." + uuid.New().String() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := jpeg.Encode(f, flatten(img), &jpeg.Options{Quality: d.quality}); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", dest, err)
	}
	return nil
}

// flatten draws the image over an opaque white background, JPEG has no
// alpha channel.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
