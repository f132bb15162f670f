// Package review is the AI collaborator: it turns essays, answers, and
// analysis requests into the scored payloads the store persists. Every
// Passed flag leaving this package is recomputed from the numeric score;
// the model is trusted for numbers, never for booleans.
package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"feynread/internal/book"
	"feynread/internal/feynman"
	"feynread/internal/llm"
	"feynread/internal/phases"
)

// Service produces AI reviews and questions for one provider.
type Service struct {
	provider llm.Provider
}

// New creates a review service on top of the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// TeachingReview is the graded outcome of one teaching essay.
type TeachingReview struct {
	Review string
	Scores book.ScoreSet
	Passed bool
}

// ReviewTeaching grades a "teach this book" essay.
func (s *Service) ReviewTeaching(ctx context.Context, b *book.Book, essay string) (*TeachingReview, error) {
	ctx = llm.WithPurpose(ctx, "teaching-review")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    teachingSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildTeachingPrompt(b, essay)}},
		Schema:    teachingReviewSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("review teaching: %w", err)
	}

	var out struct {
		Review       string `json:"review"`
		Accuracy     int    `json:"accuracy"`
		Completeness int    `json:"completeness"`
		Clarity      int    `json:"clarity"`
		Overall      int    `json:"overall"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse teaching review: %w", err)
	}

	scores := book.ScoreSet{
		Accuracy:     clampScore(out.Accuracy),
		Completeness: clampScore(out.Completeness),
		Clarity:      clampScore(out.Clarity),
		Overall:      clampScore(out.Overall),
	}

	return &TeachingReview{
		Review: out.Review,
		Scores: scores,
		Passed: scores.Overall >= feynman.PassThreshold,
	}, nil
}

// GenerateQuestions produces one challenge question per persona, as the
// question list for a new QA session.
func (s *Service) GenerateQuestions(ctx context.Context, b *book.Book, personas []Persona) ([]book.PersonaQuestion, error) {
	ctx = llm.WithPurpose(ctx, "qa-questions")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    questionSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildQuestionPrompt(b, personas)}},
		Schema:    questionBatchSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var out struct {
		Questions []struct {
			Question string `json:"question"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if len(out.Questions) != len(personas) {
		return nil, fmt.Errorf("expected %d questions, got %d", len(personas), len(out.Questions))
	}

	questions := make([]book.PersonaQuestion, len(personas))
	for i, p := range personas {
		questions[i] = book.PersonaQuestion{
			ID:          book.NewID(),
			Persona:     p.ID,
			PersonaName: p.Name,
			Question:    out.Questions[i].Question,
		}
	}
	return questions, nil
}

// AnswerReview is the graded outcome of one question answer.
type AnswerReview struct {
	Review string
	Score  int
	Passed bool
}

// ScoreAnswer grades the reader's answer to one persona question.
func (s *Service) ScoreAnswer(ctx context.Context, b *book.Book, q book.PersonaQuestion, answer string) (*AnswerReview, error) {
	ctx = llm.WithPurpose(ctx, "qa-review")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    answerSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildAnswerPrompt(b, q, answer)}},
		Schema:    answerReviewSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("score answer: %w", err)
	}

	var out struct {
		Review string `json:"review"`
		Score  int    `json:"score"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse answer review: %w", err)
	}

	score := clampScore(out.Score)
	return &AnswerReview{
		Review: out.Review,
		Score:  score,
		Passed: score >= feynman.PassThreshold,
	}, nil
}

// ApplyAnswer folds a graded answer into its question, filling the answer
// and review fields in place.
func ApplyAnswer(q *book.PersonaQuestion, answer string, r *AnswerReview) {
	now := time.Now()
	q.UserAnswer = answer
	q.AnsweredAt = &now
	q.AIReview = r.Review
	score := r.Score
	q.Score = &score
	passed := r.Passed
	q.Passed = &passed
	q.ReviewedAt = &now
}

// AllPassed reports whether every scored question in the list passed.
// Used by callers to maintain the session-level AllPassed cache.
func AllPassed(questions []book.PersonaQuestion) bool {
	for _, q := range questions {
		if q.Scored() && *q.Score < feynman.PassThreshold {
			return false
		}
	}
	return true
}

// AnalyzePhase runs one analysis phase and returns the generated text for
// storage under Book.Responses[phase.ID].
func (s *Service) AnalyzePhase(ctx context.Context, b *book.Book, phase phases.Phase) (string, error) {
	ctx = llm.WithPurpose(ctx, "phase-analysis")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    phaseSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildPhasePrompt(b, phase.Title, phase.Focus)}},
		MaxTokens: 2048,
	})
	if err != nil {
		return "", fmt.Errorf("analyze phase %s: %w", phase.ID, err)
	}
	return string(resp.Content), nil
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
