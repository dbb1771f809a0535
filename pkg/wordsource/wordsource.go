// pkg/wordsource/wordsource.go
package wordsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Format identifies the payload shape of a word source.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ErrMalformedResponse reports a payload that does not match the configured format.
var ErrMalformedResponse = errors.New("malformed word source response")

// wordRecord is the object shape used by word-list APIs that wrap each word.
type wordRecord struct {
	Word string `json:"word"`
}

// Parser extracts candidate words from word source payloads.
type Parser struct {
	minWordLength int
}

// New creates a Parser that keeps words of at least minWordLength letters.
// Non-positive values fall back to a single letter.
func New(minWordLength int) *Parser {
	if minWordLength <= 0 {
		minWordLength = 1
	}
	return &Parser{minWordLength: minWordLength}
}

// Parse extracts words from content in the given format.
func (p *Parser) Parse(content []byte, format Format) ([]string, error) {
	switch format {
	case FormatJSON:
		return p.parseJSON(content)
	case FormatText:
		return p.parseText(content), nil
	case FormatHTML:
		return p.parseHTML(content)
	default:
		return nil, fmt.Errorf("unsupported word source format %q", format)
	}
}

// parseJSON accepts either an array of objects with a "word" field or a bare
// array of strings. Anything else is a malformed response.
func (p *Parser) parseJSON(content []byte) ([]string, error) {
	var records []wordRecord
	if err := json.Unmarshal(content, &records); err == nil {
		return p.collect(recordWords(records)), nil
	}

	var plain []string
	if err := json.Unmarshal(content, &plain); err != nil {
		return nil, fmt.Errorf("%w: expected an array of words: %v", ErrMalformedResponse, err)
	}
	return p.collect(plain), nil
}

func (p *Parser) parseText(content []byte) []string {
	return p.collect(strings.Split(string(content), "\n"))
}

func (p *Parser) parseHTML(content []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	doc.Find("script,style").Remove()
	return p.collect(strings.Fields(doc.Text())), nil
}

// collect cleans each candidate and drops the ones that end up too short.
func (p *Parser) collect(candidates []string) []string {
	words := make([]string, 0, len(candidates))
	for _, c := range candidates {
		word := cleanWord(c)
		if len(word) >= p.minWordLength {
			words = append(words, word)
		}
	}
	return words
}

func recordWords(records []wordRecord) []string {
	words := make([]string, 0, len(records))
	for _, r := range records {
		words = append(words, r.Word)
	}
	return words
}

// cleanWord normalizes a candidate: lowercase, letters only.
func cleanWord(word string) string {
	word = strings.ToLower(word)

	word = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, word)

	return strings.TrimSpace(word)
}

// IsAlphabetic checks if a string contains only alphabetic characters.
func IsAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
