package models

// GenerateRequest carries the two user-supplied parameters of a generation run.
type GenerateRequest struct {
	WordsPerPhrase int `json:"wordsPerPhrase"`
	Count          int `json:"count"`
}

type Result struct {
	Passphrases []string `json:"passphrases"`
	Stats       struct {
		PoolSize    int `json:"poolSize"`
		TimeElapsed int `json:"timeElapsedMs"`
	} `json:"stats"`
}
