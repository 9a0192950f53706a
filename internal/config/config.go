package config

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Defaults reproduce the constants the dataset was historically built with.
const (
	DefaultBaseURL      = "https://db.ygoprodeck.com/api/v7"
	DefaultImageBaseURL = "https://images.ygoprodeck.com/images/cards"
	DefaultLanguage     = "fr"
	DefaultPause        = time.Second
	DefaultTimeout      = 30 * time.Second
	DefaultQuality      = 90
)

type API struct {
	BaseURL  string
	Language string
	Pause    time.Duration
	Timeout  time.Duration
}

type Data struct {
	Root string
}

type Images struct {
	BaseURL        string
	Enabled        bool
	Quality        int
	CardsDir       string
	CollectionsDir string
}

type Config struct {
	API    API
	Data   Data
	Images Images
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		API: API{
			BaseURL:  DefaultBaseURL,
			Language: DefaultLanguage,
			Pause:    DefaultPause,
			Timeout:  DefaultTimeout,
		},
		Data: Data{
			Root: ".",
		},
		Images: Images{
			BaseURL:        DefaultImageBaseURL,
			Enabled:        true,
			Quality:        DefaultQuality,
			CardsDir:       "cards-image",
			CollectionsDir: "collections-image",
		},
	}
}

// Load reads an ini config file and layers it over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}

	api := f.Section("api")
	c.API.BaseURL = api.Key("base_url").MustString(c.API.BaseURL)
	c.API.Language = api.Key("language").MustString(c.API.Language)
	c.API.Pause = api.Key("pause").MustDuration(c.API.Pause)
	c.API.Timeout = api.Key("timeout").MustDuration(c.API.Timeout)

	data := f.Section("data")
	c.Data.Root = data.Key("root").MustString(c.Data.Root)

	img := f.Section("images")
	c.Images.BaseURL = img.Key("base_url").MustString(c.Images.BaseURL)
	c.Images.Enabled = img.Key("enabled").MustBool(c.Images.Enabled)
	c.Images.Quality = img.Key("quality").MustInt(c.Images.Quality)
	c.Images.CardsDir = img.Key("cards_dir").MustString(c.Images.CardsDir)
	c.Images.CollectionsDir = img.Key("collections_dir").MustString(c.Images.CollectionsDir)

	return c, nil
}
