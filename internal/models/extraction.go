package models

// ExtractionResult is the vocabulary extracted from a passage.
type ExtractionResult struct {
	Vocabulary []WordEntry `json:"vocabulary"`
	IsMockData bool        `json:"isMockData"`
	Message    string      `json:"message,omitempty"`
}

// LookupResult is a single looked-up word.
type LookupResult struct {
	Vocabulary WordEntry `json:"vocabulary"`
	IsMockData bool      `json:"isMockData"`
	Message    string    `json:"message,omitempty"`
}
