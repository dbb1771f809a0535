package wordpool

import (
	"reflect"
	"testing"
)

func TestAddAndContains(t *testing.T) {
	p := New()
	p.Add("Apple")
	p.Add("river")

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"exact match", "river", true},
		{"case insensitive", "APPLE", true},
		{"missing word", "stone", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestAddIgnoresDuplicatesAndBlanks(t *testing.T) {
	p := New()
	p.Add("apple")
	p.Add("Apple")
	p.Add("  ")
	p.Add("")
	p.Add("river")

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestWordsOrder(t *testing.T) {
	p := New()
	for _, w := range []string{"stone", "apple", "river"} {
		p.Add(w)
	}

	want := []string{"stone", "apple", "river"}
	if got := p.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	p := New()
	p.Add("apple")

	words := p.Words()
	words[0] = "mutated"

	if got := p.Words()[0]; got != "apple" {
		t.Errorf("internal order mutated: got %q", got)
	}
}
