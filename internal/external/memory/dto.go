package memory

import (
	"fmt"
	"time"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/knowledge"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/user"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// Self-describing JSON DTOs mirroring the domain's attribute names. Card
// variants are tagged by field name ("Vocabulary" | "Kanji" | "Grammar"),
// and IDs serialise as their bare ULID strings.

type userDTO struct {
	ID             string       `json:"id"`
	DisplayName    string       `json:"display_name"`
	Level          string       `json:"level"`
	NativeLanguage string       `json:"native_language"`
	Settings       settingsDTO  `json:"settings"`
	Knowledge      knowledgeDTO `json:"knowledge"`
}

type settingsDTO struct {
	GeneratorProvider string `json:"generator_provider,omitempty"`
	GeneratorAPIKey   string `json:"generator_api_key,omitempty"`
	GeneratorModel    string `json:"generator_model,omitempty"`
	DuolingoToken     string `json:"duolingo_token,omitempty"`
	TelegramUserID    string `json:"telegram_user_id,omitempty"`
}

type knowledgeDTO struct {
	StudyCards    []studyCardDTO        `json:"study_cards"`
	LessonHistory []dailyHistoryItemDTO `json:"lesson_history"`
	CurrentDay    time.Time             `json:"current_day"`
}

type studyCardDTO struct {
	ID      string     `json:"id"`
	Card    cardDTO    `json:"card"`
	History historyDTO `json:"history"`
}

type cardDTO struct {
	Vocabulary *vocabularyCardDTO `json:"Vocabulary,omitempty"`
	Kanji      *kanjiCardDTO      `json:"Kanji,omitempty"`
	Grammar    *grammarCardDTO    `json:"Grammar,omitempty"`
}

type examplePhraseDTO struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

type exampleWordDTO struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

type vocabularyCardDTO struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Examples []examplePhraseDTO `json:"examples"`
}

type kanjiCardDTO struct {
	Question string           `json:"question"`
	Answer   string           `json:"answer"`
	Examples []exampleWordDTO `json:"examples"`
}

type grammarCardDTO struct {
	RuleID      string   `json:"rule_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ApplyTo     []string `json:"apply_to"`
}

type stateDTO struct {
	Stability  float64   `json:"stability"`
	Difficulty float64   `json:"difficulty"`
	NextReview time.Time `json:"next_review"`
}

type reviewLogDTO struct {
	ID              string    `json:"id"`
	Rating          int       `json:"rating"`
	At              time.Time `json:"at"`
	IntervalSeconds float64   `json:"interval_seconds"`
}

type historyDTO struct {
	Current *stateDTO      `json:"current,omitempty"`
	Reviews []reviewLogDTO `json:"reviews"`
}

type dailyHistoryItemDTO struct {
	Date                time.Time `json:"date"`
	AvgStability        float64   `json:"avg_stability"`
	AvgDifficulty       float64   `json:"avg_difficulty"`
	TotalCards          int       `json:"total_cards"`
	KnownCards          int       `json:"known_cards"`
	InProgressCards     int       `json:"in_progress_cards"`
	NewCards            int       `json:"new_cards"`
	LowStabilityCards   int       `json:"low_stability_cards"`
	HighDifficultyCards int       `json:"high_difficulty_cards"`
	LessonsCompleted    int       `json:"lessons_completed"`
	LessonDurationSecs  float64   `json:"lesson_duration_seconds"`
}

func toDTO(u *user.User) userDTO {
	studyCards := u.Knowledge.StudyCards()
	scDTOs := make([]studyCardDTO, 0, len(studyCards))
	for id, sc := range studyCards {
		scDTOs = append(scDTOs, studyCardDTO{
			ID:      id.String(),
			Card:    cardToDTO(sc.Card),
			History: historyToDTO(sc.History),
		})
	}

	history := u.Knowledge.LessonHistory()
	historyDTOs := make([]dailyHistoryItemDTO, 0, len(history))
	for _, item := range history {
		historyDTOs = append(historyDTOs, dailyHistoryItemDTO{
			Date:                item.Date,
			AvgStability:        item.AvgStability,
			AvgDifficulty:       item.AvgDifficulty,
			TotalCards:          item.TotalCards,
			KnownCards:          item.KnownCards,
			InProgressCards:     item.InProgressCards,
			NewCards:            item.NewCards,
			LowStabilityCards:   item.LowStabilityCards,
			HighDifficultyCards: item.HighDifficultyCards,
			LessonsCompleted:    item.LessonsCompleted,
			LessonDurationSecs:  item.LessonDuration.Seconds(),
		})
	}

	return userDTO{
		ID:             u.ID.String(),
		DisplayName:    u.DisplayName,
		Level:          u.Level.Code(),
		NativeLanguage: string(u.NativeLanguage),
		Settings: settingsDTO{
			GeneratorProvider: u.Settings.Generator.Provider,
			GeneratorAPIKey:   u.Settings.Generator.APIKey,
			GeneratorModel:    u.Settings.Generator.Model,
			DuolingoToken:     u.Settings.DuolingoToken,
			TelegramUserID:    u.Settings.TelegramUserID,
		},
		Knowledge: knowledgeDTO{
			StudyCards:    scDTOs,
			LessonHistory: historyDTOs,
			CurrentDay:    u.Knowledge.CurrentDay(),
		},
	}
}

func cardToDTO(c card.Card) cardDTO {
	switch c.Kind {
	case card.Vocabulary:
		examples := make([]examplePhraseDTO, 0, len(c.Vocabulary.Examples))
		for _, ex := range c.Vocabulary.Examples {
			examples = append(examples, examplePhraseDTO{Text: ex.Text, Translation: ex.Translation})
		}
		return cardDTO{Vocabulary: &vocabularyCardDTO{
			Question: c.Vocabulary.Question.Text(),
			Answer:   c.Vocabulary.Answer.Text(),
			Examples: examples,
		}}
	case card.Kanji:
		examples := make([]exampleWordDTO, 0, len(c.Kanji.Examples))
		for _, ex := range c.Kanji.Examples {
			examples = append(examples, exampleWordDTO{Word: ex.Word, Meaning: ex.Meaning})
		}
		return cardDTO{Kanji: &kanjiCardDTO{
			Question: c.Kanji.Question.Text(),
			Answer:   c.Kanji.Answer.Text(),
			Examples: examples,
		}}
	case card.Grammar:
		applyTo := make([]string, 0, len(c.Grammar.ApplyTo))
		for _, pos := range c.Grammar.ApplyTo {
			applyTo = append(applyTo, string(pos))
		}
		return cardDTO{Grammar: &grammarCardDTO{
			RuleID:      c.Grammar.RuleID,
			Title:       c.Grammar.Title,
			Description: c.Grammar.Description,
			ApplyTo:     applyTo,
		}}
	default:
		return cardDTO{}
	}
}

func historyToDTO(h memory.History) historyDTO {
	reviews := make([]reviewLogDTO, 0, len(h.Reviews))
	for _, r := range h.Reviews {
		reviews = append(reviews, reviewLogDTO{
			ID:              r.ID.String(),
			Rating:          int(r.Rating),
			At:              r.At,
			IntervalSeconds: r.Interval.Seconds(),
		})
	}
	var current *stateDTO
	if h.Current != nil {
		current = &stateDTO{
			Stability:  h.Current.Stability.Value(),
			Difficulty: h.Current.Difficulty.Value(),
			NextReview: h.Current.NextReview,
		}
	}
	return historyDTO{Current: current, Reviews: reviews}
}

func (dto userDTO) toDomain() (*user.User, error) {
	level, err := valueobject.ParseJapaneseLevel(dto.Level)
	if err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", dto.ID, err)
	}
	lang, err := valueobject.ParseNativeLanguage(dto.NativeLanguage)
	if err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", dto.ID, err)
	}

	u := user.New(valueobject.UserID(dto.ID), dto.DisplayName, level, lang)

	settings, err := user.NewSettings(user.GeneratorSettings{
		Provider: dto.Settings.GeneratorProvider,
		APIKey:   dto.Settings.GeneratorAPIKey,
		Model:    dto.Settings.GeneratorModel,
	}, dto.Settings.DuolingoToken, dto.Settings.TelegramUserID)
	if err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", dto.ID, err)
	}
	u.Settings = settings

	studyCards := make(map[valueobject.CardID]card.StudyCard, len(dto.Knowledge.StudyCards))
	for _, scDTO := range dto.Knowledge.StudyCards {
		c, err := scDTO.Card.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decoding card %s: %w", scDTO.ID, err)
		}
		h, err := scDTO.History.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decoding history for card %s: %w", scDTO.ID, err)
		}
		studyCards[valueobject.CardID(scDTO.ID)] = card.StudyCard{
			ID:      valueobject.CardID(scDTO.ID),
			Card:    c,
			History: h,
		}
	}

	history := make([]knowledge.DailyHistoryItem, 0, len(dto.Knowledge.LessonHistory))
	for _, item := range dto.Knowledge.LessonHistory {
		history = append(history, knowledge.DailyHistoryItem{
			Date:                item.Date,
			AvgStability:        item.AvgStability,
			AvgDifficulty:       item.AvgDifficulty,
			TotalCards:          item.TotalCards,
			KnownCards:          item.KnownCards,
			InProgressCards:     item.InProgressCards,
			NewCards:            item.NewCards,
			LowStabilityCards:   item.LowStabilityCards,
			HighDifficultyCards: item.HighDifficultyCards,
			LessonsCompleted:    item.LessonsCompleted,
			LessonDuration:      time.Duration(item.LessonDurationSecs * float64(time.Second)),
		})
	}

	u.Knowledge = knowledge.Restore(studyCards, history, dto.Knowledge.CurrentDay)
	return u, nil
}

func (dto cardDTO) toDomain() (card.Card, error) {
	switch {
	case dto.Vocabulary != nil:
		examples := make([]card.ExamplePhrase, 0, len(dto.Vocabulary.Examples))
		for _, ex := range dto.Vocabulary.Examples {
			examples = append(examples, card.ExamplePhrase{Text: ex.Text, Translation: ex.Translation})
		}
		return card.NewVocabularyCard(dto.Vocabulary.Question, dto.Vocabulary.Answer, examples)
	case dto.Kanji != nil:
		question, err := valueobject.NewQuestion(dto.Kanji.Question)
		if err != nil {
			return card.Card{}, err
		}
		answer, err := valueobject.NewAnswer(dto.Kanji.Answer)
		if err != nil {
			return card.Card{}, err
		}
		examples := make([]card.ExampleWord, 0, len(dto.Kanji.Examples))
		for _, ex := range dto.Kanji.Examples {
			examples = append(examples, card.ExampleWord{Word: ex.Word, Meaning: ex.Meaning})
		}
		return card.Card{
			Kind: card.Kanji,
			Kanji: &card.KanjiCard{
				Question: question,
				Answer:   answer,
				Examples: examples,
			},
		}, nil
	case dto.Grammar != nil:
		applyTo := make([]japanese.PartOfSpeech, 0, len(dto.Grammar.ApplyTo))
		for _, pos := range dto.Grammar.ApplyTo {
			applyTo = append(applyTo, japanese.PartOfSpeech(pos))
		}
		return card.Card{
			Kind: card.Grammar,
			Grammar: &card.GrammarCard{
				RuleID:      dto.Grammar.RuleID,
				Title:       dto.Grammar.Title,
				Description: dto.Grammar.Description,
				ApplyTo:     applyTo,
			},
		}, nil
	default:
		return card.Card{}, fmt.Errorf("card DTO has no populated variant")
	}
}

func (dto historyDTO) toDomain() (memory.History, error) {
	reviews := make([]memory.ReviewLog, 0, len(dto.Reviews))
	for _, r := range dto.Reviews {
		reviews = append(reviews, memory.ReviewLog{
			ID:       valueobject.ReviewLogID(r.ID),
			Rating:   valueobject.Rating(r.Rating),
			At:       r.At,
			Interval: time.Duration(r.IntervalSeconds * float64(time.Second)),
		})
	}

	var current *memory.State
	if dto.Current != nil {
		stability, err := valueobject.NewStability(dto.Current.Stability)
		if err != nil {
			return memory.History{}, err
		}
		difficulty, err := valueobject.NewDifficulty(dto.Current.Difficulty)
		if err != nil {
			return memory.History{}, err
		}
		current = &memory.State{
			Stability:  stability,
			Difficulty: difficulty,
			NextReview: dto.Current.NextReview,
		}
	}

	return memory.History{Current: current, Reviews: reviews}, nil
}
