package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/corrooli/passphrase-service/internal/config"
	"github.com/corrooli/passphrase-service/internal/models"
	"github.com/corrooli/passphrase-service/pkg/fetcher"
	"github.com/corrooli/passphrase-service/pkg/passphrase"
	"github.com/corrooli/passphrase-service/pkg/wordpool"
	"github.com/corrooli/passphrase-service/pkg/wordsource"
	"github.com/schollz/progressbar/v3"
)

// App wires the word source client, parser, pool and generator together.
type App struct {
	config    *config.Config
	fetcher   *fetcher.Fetcher
	parser    *wordsource.Parser
	pool      *wordpool.Pool
	generator *passphrase.Generator
	// ShowProgress renders a progress bar while the pool loads. Off by
	// default so the web server and tests stay quiet.
	ShowProgress bool
}

// New creates a new instance of the application. Pass a nil rng for
// production randomness; tests inject a seeded one.
func New(cfg *config.Config, rng *rand.Rand) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	f := fetcher.New(fetcher.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
		UserAgent:         cfg.HTTPClient.UserAgent,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		InitialBackoff:    time.Duration(cfg.HTTPClient.RetryDelay) * time.Second,
		APIKey:            cfg.WordSource.APIKey,
	})

	return &App{
		config:    cfg,
		fetcher:   f,
		parser:    wordsource.New(cfg.Generator.MinWordLength),
		pool:      wordpool.New(),
		generator: passphrase.New(rng),
	}, nil
}

// LoadPool fetches from the word source until the pool holds at least
// MinPoolWords unique words, or MaxFetches requests have been made. Sources
// that hand out a handful of words per call need several rounds.
func (a *App) LoadPool(ctx context.Context) error {
	target := a.config.WordSource.MinPoolWords

	var bar *progressbar.ProgressBar
	if a.ShowProgress {
		bar = progressbar.NewOptions(target,
			progressbar.OptionSetDescription("Loading word pool..."),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		defer bar.Finish()
	}

	for fetches := 0; a.pool.Len() < target; fetches++ {
		if fetches >= a.config.WordSource.MaxFetches {
			return fmt.Errorf("word pool has %d of %d words after %d fetches",
				a.pool.Len(), target, fetches)
		}

		content, err := a.fetcher.Fetch(ctx, a.config.WordSource.URL)
		if err != nil {
			return fmt.Errorf("failed to fetch word source: %w", err)
		}

		words, err := a.parser.Parse(content, wordsource.Format(a.config.WordSource.Format))
		if err != nil {
			return fmt.Errorf("failed to parse word source: %w", err)
		}

		for _, word := range words {
			a.pool.Add(word)
			if bar != nil {
				bar.Add(1)
			}
		}
	}

	return nil
}

// PoolSize reports how many unique words are currently loaded.
func (a *App) PoolSize() int {
	return a.pool.Len()
}

// Generate produces passphrases from the loaded pool, loading it first if
// needed.
func (a *App) Generate(ctx context.Context, req models.GenerateRequest) (*models.Result, error) {
	startTime := time.Now()

	if a.pool.Len() == 0 {
		if err := a.LoadPool(ctx); err != nil {
			return nil, err
		}
	}

	phrases, err := a.generator.Generate(a.pool.Words(), passphrase.Options{
		WordsPerPhrase: req.WordsPerPhrase,
		Count:          req.Count,
		Separator:      a.config.Generator.Separator,
		Capitalize:     a.config.Generator.Capitalize,
		DigitSuffix:    a.config.Generator.DigitSuffix,
	})
	if err != nil {
		return nil, err
	}

	result := &models.Result{Passphrases: phrases}
	result.Stats.PoolSize = a.pool.Len()
	result.Stats.TimeElapsed = int(time.Since(startTime).Milliseconds())
	return result, nil
}
