package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("GENERATOR_PROVIDER", "")
	t.Setenv("LESSON_NEW_CARDS", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5, cfg.Lesson.NewCardsPerLesson)
	assert.Equal(t, 24, cfg.Lesson.FixationWindow)
	assert.Equal(t, "gpt-4o-mini", cfg.Generator.Model)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("LESSON_NEW_CARDS", "8")
	t.Setenv("GENERATOR_MODEL", "gpt-4o")

	cfg := Load()

	assert.Equal(t, 8, cfg.Lesson.NewCardsPerLesson)
	assert.Equal(t, "gpt-4o", cfg.Generator.Model)
}

func TestGetEnvIntFallsBackOnBadValue(t *testing.T) {
	t.Setenv("LESSON_NEW_CARDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5, cfg.Lesson.NewCardsPerLesson)
}
