package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/corrooli/passphrase-service/internal/app"
	"github.com/corrooli/passphrase-service/internal/models"
	"github.com/corrooli/passphrase-service/pkg/passphrase"
	"github.com/corrooli/passphrase-service/pkg/wordsource"
)

// GenerateHandler serves the JSON passphrase generation API.
type GenerateHandler struct {
	app *app.App
}

func NewGenerateHandler(a *app.App) *GenerateHandler {
	return &GenerateHandler{app: a}
}

// HandleGenerate handles POST /api/v1/generate requests. Missing fields fall
// back to three words and a single passphrase.
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req := models.GenerateRequest{WordsPerPhrase: 3, Count: 1}

	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()

		var decoded models.GenerateRequest
		err := json.NewDecoder(r.Body).Decode(&decoded)
		var maxBytesErr *http.MaxBytesError
		switch {
		case err == nil:
			if decoded.WordsPerPhrase != 0 {
				req.WordsPerPhrase = decoded.WordsPerPhrase
			}
			if decoded.Count != 0 {
				req.Count = decoded.Count
			}
		case errors.Is(err, io.EOF):
			// empty body keeps the defaults
		case errors.As(err, &maxBytesErr):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	result, err := h.app.Generate(r.Context(), req)
	if err != nil {
		status, msg := classifyError(err)
		if status >= 500 {
			slog.Error("generation failed", "error", err)
		}
		writeJSON(w, status, errorResponse(msg))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// classifyError maps generation failures to HTTP statuses: validation
// failures are the client's fault, word source trouble is upstream.
func classifyError(err error) (int, string) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, wordsource.ErrMalformedResponse):
		return http.StatusBadGateway, "word source returned a malformed response"
	default:
		return http.StatusBadGateway, "failed to fetch words from the word source"
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, passphrase.ErrEmptyPool) ||
		errors.Is(err, passphrase.ErrInvalidWordCount) ||
		errors.Is(err, passphrase.ErrInvalidCount) ||
		errors.Is(err, passphrase.ErrPoolTooSmall)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
