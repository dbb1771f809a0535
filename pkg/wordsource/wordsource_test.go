package wordsource

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected []string
		wantErr  bool
	}{
		{
			name:     "array of word objects",
			content:  []byte(`[{"word":"apple"},{"word":"river"},{"word":"stone"}]`),
			expected: []string{"apple", "river", "stone"},
			wantErr:  false,
		},
		{
			name:     "array of strings",
			content:  []byte(`["apple","river","stone"]`),
			expected: []string{"apple", "river", "stone"},
			wantErr:  false,
		},
		{
			name:     "words are normalized",
			content:  []byte(`["Apple!","RIVER","st0ne"]`),
			expected: []string{"apple", "river", "stne"},
			wantErr:  false,
		},
		{
			name:     "empty array",
			content:  []byte(`[]`),
			expected: []string{},
			wantErr:  false,
		},
		{
			name:    "non-JSON body",
			content: []byte(`<html>definitely not json</html>`),
			wantErr: true,
		},
		{
			name:    "JSON object instead of array",
			content: []byte(`{"words":["apple"]}`),
			wantErr: true,
		},
	}

	p := New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.content, FormatJSON)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Errorf("expected ErrMalformedResponse, got %v", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected []string
	}{
		{
			name:     "simple word list",
			content:  []byte("apple\nriver\nstone"),
			expected: []string{"apple", "river", "stone"},
		},
		{
			name:     "special characters stripped",
			content:  []byte("apple!\nriver?\nstone123"),
			expected: []string{"apple", "river", "stone"},
		},
		{
			name:     "empty lines skipped",
			content:  []byte("apple\n\nriver"),
			expected: []string{"apple", "river"},
		},
		{
			name:     "empty content",
			content:  []byte(""),
			expected: []string{},
		},
	}

	p := New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.content, FormatText)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseHTML(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected []string
	}{
		{
			name:     "simple HTML",
			content:  []byte("<html><body>apple river</body></html>"),
			expected: []string{"apple", "river"},
		},
		{
			name:     "script and style ignored",
			content:  []byte("<html><script>var x = 'junk';</script><style>.x{}</style><body>apple river</body></html>"),
			expected: []string{"apple", "river"},
		},
	}

	p := New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.content, FormatHTML)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	p := New(1)
	if _, err := p.Parse([]byte("apple"), Format("csv")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestMinWordLength(t *testing.T) {
	p := New(3)
	got, err := p.Parse([]byte("a\nan\napple\nio"), FormatText)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"apple"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple word", "hello", true},
		{"word with numbers", "hello123", false},
		{"word with special characters", "hello!", false},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlphabetic(tt.input); got != tt.expected {
				t.Errorf("IsAlphabetic(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
