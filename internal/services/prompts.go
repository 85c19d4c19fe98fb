package services

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/vytor/vocabflash/internal/models"
)

const entryFormat = `{
    "word": "...",
    "phonetic": "...",
    "partOfSpeech": "...",
    "meaning_en": "...",
    "meaning_vi": "...",
    "context": "...",
    "example": "..."
  }`

func extractPrompt(passage string, count int) string {
	return fmt.Sprintf(`Analyze the following IELTS reading passage and extract advanced vocabulary words suitable for IELTS learners.
For each word, provide the following information in JSON format:

1. word: the vocabulary word
2. phonetic: IPA pronunciation
3. partOfSpeech: noun, verb, adjective, etc.
4. meaning_en: English definition
5. meaning_vi: Vietnamese translation
6. context: the sentence from the passage where the word appears
7. example: an additional example sentence using this word

Extract %d words that would be most valuable for IELTS preparation. Focus on academic and formal vocabulary.

Return ONLY a valid JSON array without any markdown formatting or additional text. The format should be:
[
  %s
]

Passage:
%s`, count, entryFormat, passage)
}

func lookupPrompt(word, sentence string) string {
	contextLine := ""
	contextRule := "create a meaningful context sentence"
	if sentence != "" {
		contextLine = fmt.Sprintf("Context: %q\n", sentence)
		contextRule = "use the provided context sentence"
	}
	return fmt.Sprintf(`Look up the following word/phrase and provide detailed information in JSON format:

Word/Phrase: %q
%s
Provide the following information:
1. word: the vocabulary word/phrase
2. phonetic: IPA pronunciation
3. partOfSpeech: noun, verb, adjective, etc.
4. meaning_en: English definition
5. meaning_vi: Vietnamese translation
6. context: %s
7. example: an additional example sentence using this word

Return ONLY a valid JSON object (not an array) without any markdown formatting or additional text. The format should be:
%s`, word, contextLine, contextRule, entryFormat)
}

func mockVocabulary() []models.WordEntry {
	return []models.WordEntry{
		{
			Word:         "substantial",
			Phonetic:     lo.ToPtr("/səbˈstænʃəl/"),
			PartOfSpeech: lo.ToPtr("adjective"),
			MeaningEN:    lo.ToPtr("of considerable importance, size, or worth"),
			MeaningVI:    lo.ToPtr("đáng kể, quan trọng"),
			Context:      lo.ToPtr("There has been substantial progress in the field of renewable energy."),
			Example:      lo.ToPtr("The company made substantial profits this quarter."),
		},
		{
			Word:         "prevalent",
			Phonetic:     lo.ToPtr("/ˈprevələnt/"),
			PartOfSpeech: lo.ToPtr("adjective"),
			MeaningEN:    lo.ToPtr("widespread in a particular area or at a particular time"),
			MeaningVI:    lo.ToPtr("phổ biến, thịnh hành"),
			Context:      lo.ToPtr("This disease is prevalent in tropical regions."),
			Example:      lo.ToPtr("Social media addiction has become increasingly prevalent among teenagers."),
		},
		{
			Word:         "deteriorate",
			Phonetic:     lo.ToPtr("/dɪˈtɪriəreɪt/"),
			PartOfSpeech: lo.ToPtr("verb"),
			MeaningEN:    lo.ToPtr("become progressively worse"),
			MeaningVI:    lo.ToPtr("xấu đi, suy giảm"),
			Context:      lo.ToPtr("The patient's condition began to deteriorate rapidly."),
			Example:      lo.ToPtr("Without proper maintenance, the building will continue to deteriorate."),
		},
	}
}

func mockLookup(word, sentence string) models.WordEntry {
	if sentence == "" {
		sentence = "This is a context sentence."
	}
	return models.WordEntry{
		Word:         word,
		Phonetic:     lo.ToPtr("/ˈeksəmpl/"),
		PartOfSpeech: lo.ToPtr("noun"),
		MeaningEN:    lo.ToPtr("a thing characteristic of its kind or illustrating a general rule"),
		MeaningVI:    lo.ToPtr("ví dụ, mẫu"),
		Context:      lo.ToPtr(sentence),
		Example:      lo.ToPtr("For example, this is how you use it."),
	}
}
