package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corrooli/passphrase-service/internal/app"
	"github.com/corrooli/passphrase-service/internal/models"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Passphrase Generator</title>
    <link rel="stylesheet" href="https://unpkg.com/@picocss/pico@1.*/css/pico.min.css">
  </head>
  <body>
    <main class="container">
      <h1>Passphrase Generator</h1>
      <form method="post">
        <label for="words">Words per passphrase:</label>
        <input type="number" id="words" name="words" value="{{ .Words }}" min="1" max="20">
        <label for="count">Number of passphrases:</label>
        <input type="number" id="count" name="count" value="{{ .Count }}" min="1" max="50">
        <button type="submit">Generate</button>
      </form>
      <article>
      {{ range .Passphrases }}
        <p><strong>{{ . }}</strong></p>
      {{ end }}
      {{ if .Error }}
        <h2>Error:</h2>
        <p><strong>{{ .Error }}</strong></p>
      {{ end }}
      </article>
    </main>
  </body>
</html>
`))

type indexData struct {
	Words       int
	Count       int
	Passphrases []string
	Error       string
}

// IndexHandler serves the HTML form front end.
type IndexHandler struct {
	app *app.App
}

func NewIndexHandler(a *app.App) *IndexHandler {
	return &IndexHandler{app: a}
}

// HandleIndex renders the form on GET and generates passphrases on POST.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{Words: 3, Count: 1}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			data.Error = "invalid form submission"
			h.render(w, http.StatusBadRequest, data)
			return
		}

		words, wordsErr := positiveFormValue(r, "words")
		count, countErr := positiveFormValue(r, "count")
		if wordsErr != nil || countErr != nil {
			data.Error = "both fields must be positive integers"
			h.render(w, http.StatusBadRequest, data)
			return
		}
		data.Words, data.Count = words, count

		result, err := h.app.Generate(r.Context(), models.GenerateRequest{
			WordsPerPhrase: words,
			Count:          count,
		})
		if err != nil {
			status, msg := classifyError(err)
			if status >= 500 {
				slog.Error("generation failed", "error", err)
			}
			data.Error = msg
			h.render(w, status, data)
			return
		}
		data.Passphrases = result.Passphrases
	}

	h.render(w, http.StatusOK, data)
}

func (h *IndexHandler) render(w http.ResponseWriter, status int, data indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("template render failed", "error", err)
	}
}

func positiveFormValue(r *http.Request, field string) (int, error) {
	n, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
