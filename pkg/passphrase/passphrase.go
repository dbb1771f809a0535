// pkg/passphrase/passphrase.go
package passphrase

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"
)

// DefaultSeparator joins words when Options.Separator is empty.
const DefaultSeparator = "-"

var (
	ErrEmptyPool        = errors.New("word pool is empty")
	ErrInvalidWordCount = errors.New("words per passphrase must be positive")
	ErrInvalidCount     = errors.New("passphrase count must be positive")
	ErrPoolTooSmall     = errors.New("word pool is smaller than words per passphrase")
)

// Options configures a single generation run.
type Options struct {
	WordsPerPhrase int
	Count          int
	Separator      string
	Capitalize     bool
	// DigitSuffix appends that many random digits to each passphrase. Zero disables.
	DigitSuffix int
}

// Generator produces passphrases from a word pool.
//
// Words are sampled without replacement within a single passphrase and
// independently across passphrases, so the same word never repeats inside
// one passphrase but may appear in several.
type Generator struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// New creates a Generator backed by rng. A nil rng is seeded from crypto/rand,
// so production output is unpredictable while tests can pass a fixed seed.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(newSeed()))
	}
	return &Generator{rng: rng}
}

// Generate produces opts.Count passphrases from pool.
func (g *Generator) Generate(pool []string, opts Options) ([]string, error) {
	if err := validate(pool, opts); err != nil {
		return nil, err
	}

	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	phrases := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		phrases = append(phrases, g.buildPhrase(pool, opts))
	}
	return phrases, nil
}

func (g *Generator) buildPhrase(pool []string, opts Options) string {
	words := make([]string, 0, opts.WordsPerPhrase)
	for _, idx := range g.rng.Perm(len(pool))[:opts.WordsPerPhrase] {
		word := pool[idx]
		if opts.Capitalize {
			word = capitalize(word)
		}
		// Multi-word entries would otherwise smuggle spaces into the phrase.
		word = strings.ReplaceAll(word, " ", opts.Separator)
		words = append(words, word)
	}

	phrase := strings.Join(words, opts.Separator)
	if opts.DigitSuffix > 0 {
		phrase += opts.Separator + g.randomDigits(opts.DigitSuffix)
	}
	return phrase
}

func (g *Generator) randomDigits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d", g.rng.Intn(10))
	}
	return b.String()
}

func validate(pool []string, opts Options) error {
	if opts.WordsPerPhrase <= 0 {
		return ErrInvalidWordCount
	}
	if opts.Count <= 0 {
		return ErrInvalidCount
	}
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	if len(pool) < opts.WordsPerPhrase {
		return ErrPoolTooSmall
	}
	return nil
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// newSeed draws a seed from crypto/rand, falling back to a fixed value only
// if the system randomness source is unavailable.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
