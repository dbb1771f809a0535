package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corrooli/passphrase-service/internal/models"
)

// PromptParams reads the two generation parameters interactively. Prompts go
// to w, answers come from r. Both values must be positive integers.
func PromptParams(r io.Reader, w io.Writer) (models.GenerateRequest, error) {
	scanner := bufio.NewScanner(r)

	wordsPerPhrase, err := promptInt(scanner, w, "Words per passphrase: ")
	if err != nil {
		return models.GenerateRequest{}, err
	}

	count, err := promptInt(scanner, w, "Number of passphrases: ")
	if err != nil {
		return models.GenerateRequest{}, err
	}

	return models.GenerateRequest{WordsPerPhrase: wordsPerPhrase, Count: count}, nil
}

func promptInt(scanner *bufio.Scanner, w io.Writer, prompt string) (int, error) {
	fmt.Fprint(w, prompt)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("error reading input: %w", err)
		}
		return 0, fmt.Errorf("no input provided")
	}

	raw := strings.TrimSpace(scanner.Text())
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: expected an integer", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid input %d: expected a positive integer", n)
	}

	return n, nil
}
