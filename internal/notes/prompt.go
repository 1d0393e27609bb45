package notes

import "github.com/nguyentantai21042004/notes-craft/internal/transcript"

// LanguageClause is the trailing instruction naming the output language.
func LanguageClause(language string) string {
	return " And language will be " + language
}

// AssemblePrompt builds the single text blob sent to the model.
func AssemblePrompt(prompt string, segments []transcript.Segment, language string) string {
	return prompt + transcript.Join(segments) + LanguageClause(language)
}
