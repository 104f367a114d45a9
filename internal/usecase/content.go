package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yurvon-screamo/origa-sub001/internal/dictionary"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// maxGenerationRetries bounds the generator retry loop: a flaky provider
// gets a few tries before the call fails outright.
const maxGenerationRetries = 3

type generatedContent struct {
	answer valueobject.Answer
}

type generatorResponse struct {
	Translation string `json:"translation"`
}

// generateCardContent resolves a translation for word: the embedded
// vocabulary dictionary first, falling back to the configured generator.
func (s *Service) generateCardContent(ctx context.Context, word string, lang valueobject.NativeLanguage, level valueobject.JapaneseLevel) (generatedContent, error) {
	if translation, ok := dictionary.VocabularyTranslation(word, lang); ok {
		answer, err := valueobject.NewAnswer(translation)
		if err != nil {
			return generatedContent{}, err
		}
		return generatedContent{answer: answer}, nil
	}

	return s.generateWithLlm(ctx, word, lang, level)
}

func (s *Service) generateWithLlm(ctx context.Context, word string, lang valueobject.NativeLanguage, level valueobject.JapaneseLevel) (generatedContent, error) {
	if s.Generator == nil {
		return generatedContent{}, &knerr.LlmError{Attempts: 0, Err: fmt.Errorf("no generator configured")}
	}

	prompt := buildGenerationPrompt(word, lang, level)

	var lastErr error
	for attempt := 1; attempt <= maxGenerationRetries; attempt++ {
		raw, err := s.Generator.GenerateText(ctx, prompt)
		if err != nil {
			lastErr = &knerr.LlmError{Attempts: attempt, Err: fmt.Errorf("generation call failed: %w", err)}
			continue
		}

		content, err := parseGeneratorResponse(raw, attempt)
		if err != nil {
			lastErr = err
			continue
		}
		return content, nil
	}

	if lastErr != nil {
		return generatedContent{}, lastErr
	}
	return generatedContent{}, &knerr.LlmError{Attempts: maxGenerationRetries, Err: fmt.Errorf("failed to generate content after all retries")}
}

func parseGeneratorResponse(raw string, attempt int) (generatedContent, error) {
	cleaned := cleanCodeFence(raw)

	var resp generatorResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return generatedContent{}, &knerr.LlmError{
			Attempts: attempt,
			Err:      fmt.Errorf("failed to parse JSON response %q: %w", cleaned, err),
		}
	}

	answerText := strings.Trim(resp.Translation, "\n\r. ")
	answer, err := valueobject.NewAnswer(answerText)
	if err != nil {
		return generatedContent{}, &knerr.LlmError{
			Attempts: attempt,
			Err:      fmt.Errorf("invalid answer format: %w", err),
		}
	}

	return generatedContent{answer: answer}, nil
}

func cleanCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func buildGenerationPrompt(word string, lang valueobject.NativeLanguage, level valueobject.JapaneseLevel) string {
	return fmt.Sprintf(`You are a language-learning assistant.
Task: produce a translation of the word '%s' for a %s-speaking student at level %s.

Requirements:
1. Answer in one sentence.
2. Do not repeat the word in the answer: the answer becomes the back of a flashcard and must work when the card is flipped.
3. Do not include the reading or transcription, the student can already read it.
4. Give only the answer, no preamble.
5. If the word is a single kanji, explain it as a word rather than as a kanji character.

Respond with STRICTLY valid JSON, no markdown fences:
{
  "translation": "word translation"
}`, word, lang, level.Code())
}
