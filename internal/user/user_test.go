package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

func TestNewUserHasEmptyKnowledgeSet(t *testing.T) {
	u := New("01A", "Taro", valueobject.N5, valueobject.English)
	assert.Empty(t, u.Knowledge.StudyCards())
}

func TestCreateCardAndDeleteCard(t *testing.T) {
	u := New("01A", "Taro", valueobject.N5, valueobject.English)
	now := time.Now()

	c, err := card.NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)

	_, err = u.CreateCard("card1", c, now)
	require.NoError(t, err)
	assert.Len(t, u.Knowledge.StudyCards(), 1)

	err = u.DeleteCard("card1", now)
	require.NoError(t, err)
	assert.Empty(t, u.Knowledge.StudyCards())
}

func TestNewSettingsRejectsGeneratorWithoutAPIKey(t *testing.T) {
	_, err := NewSettings(GeneratorSettings{Provider: "openai"}, "", "")
	assert.Error(t, err)
}

func TestNewSettingsAcceptsEmptyGenerator(t *testing.T) {
	s, err := NewSettings(GeneratorSettings{}, "duo-token", "")
	require.NoError(t, err)
	assert.False(t, s.HasGenerator())
	assert.Equal(t, "duo-token", s.DuolingoToken)
}

func TestUpdateSettingsValidates(t *testing.T) {
	u := New("01A", "Taro", valueobject.N5, valueobject.English)
	err := u.UpdateSettings(GeneratorSettings{Provider: "openai", APIKey: "key"}, "", "")
	require.NoError(t, err)
	assert.True(t, u.Settings.HasGenerator())

	err = u.UpdateSettings(GeneratorSettings{Provider: "openai"}, "", "")
	assert.Error(t, err)
}
