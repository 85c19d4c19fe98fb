package models

import "time"

// WordEntry is one vocabulary item. Only Word is mandatory; the other fields
// are nil when absent or null.
type WordEntry struct {
	Word         string  `json:"word" validate:"required"`
	Phonetic     *string `json:"phonetic"`
	PartOfSpeech *string `json:"partOfSpeech"`
	MeaningEN    *string `json:"meaning_en"`
	MeaningVI    *string `json:"meaning_vi"`
	Context      *string `json:"context"`
	Example      *string `json:"example"`
}

// VocabularySet is a stored, named collection of word entries. The filename is
// its identifier.
type VocabularySet struct {
	Filename   string      `json:"filename"`
	Words      []WordEntry `json:"vocabulary"`
	CreatedAt  time.Time   `json:"createdAt"`
	ModifiedAt time.Time   `json:"modifiedAt"`
}

// VocabularySetInfo is listing metadata derived from a stored set.
type VocabularySetInfo struct {
	Filename   string    `json:"filename"`
	WordCount  int       `json:"wordCount"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Size       int64     `json:"size"`
}
