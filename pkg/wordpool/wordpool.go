package wordpool

import (
	"strings"
	"sync"
)

// Pool is a set of candidate words with a stable insertion order, safe for
// concurrent use. Duplicates are ignored.
type Pool struct {
	words map[string]struct{}
	order []string
	mu    sync.RWMutex
}

func New() *Pool {
	return &Pool{
		words: make(map[string]struct{}),
	}
}

func (p *Pool) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.words[word]; exists {
		return
	}
	p.words[word] = struct{}{}
	p.order = append(p.order, word)
}

func (p *Pool) Contains(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, exists := p.words[strings.ToLower(word)]
	return exists
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Words returns a copy of the pool in insertion order.
func (p *Pool) Words() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}
