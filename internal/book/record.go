package book

import "time"

// ScoreSet holds the four AI-assigned sub-scores of a teaching attempt,
// each 0-100.
type ScoreSet struct {
	Accuracy     int `json:"accuracy"`
	Completeness int `json:"completeness"`
	Clarity      int `json:"clarity"`
	Overall      int `json:"overall"`
}

// TeachingRecord is one submission of a "teach this book" essay. It is
// immutable after creation; the only lifecycle operation is deletion.
//
// Passed mirrors Scores.Overall >= 60 and is stored for display only. The
// completion predicate always re-derives pass state from the numeric score.
type TeachingRecord struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Content   string    `json:"content"`
	AIReview  string    `json:"aiReview"`
	Scores    ScoreSet  `json:"scores"`
	Passed    bool      `json:"passed"`
	CreatedAt time.Time `json:"createdAt"`
}

// PersonaQuestion is one challenge question inside a QA session. A question
// starts with only the persona and question text populated; the answer and
// review fields fill in via in-place update as the user works through it.
type PersonaQuestion struct {
	ID          string     `json:"id"`
	Persona     string     `json:"persona"`
	PersonaName string     `json:"personaName"`
	Question    string     `json:"question"`
	UserAnswer  string     `json:"userAnswer,omitempty"`
	AnsweredAt  *time.Time `json:"answeredAt,omitempty"`
	AIReview    string     `json:"aiReview,omitempty"`
	Score       *int       `json:"score,omitempty"`
	Passed      *bool      `json:"passed,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

// Scored reports whether the question has received a numeric score.
func (q PersonaQuestion) Scored() bool {
	return q.Score != nil
}

// QASession is one batch of persona-driven question/answer exchanges. The
// whole session is created at once and deleted as a whole; individual
// questions are updated in place between those points.
type QASession struct {
	ID        string            `json:"id"`
	BookID    string            `json:"bookId"`
	Questions []PersonaQuestion `json:"questions"`
	AllPassed bool              `json:"allPassed"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Note is a free-text note attached to a book. Notes are bookkeeping only;
// they never influence the book's score or status.
type Note struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QASessionPatch enumerates the mutable fields of a QA session.
type QASessionPatch struct {
	// Questions, when non-nil, replaces the session's question list. The
	// caller submits the full post-update list with only the answered
	// questions changed.
	Questions []PersonaQuestion
	AllPassed *bool
}

// Apply merges the patch into s and bumps the session's UpdatedAt.
func (p QASessionPatch) Apply(s *QASession) {
	if p.Questions != nil {
		s.Questions = p.Questions
	}
	if p.AllPassed != nil {
		s.AllPassed = *p.AllPassed
	}
	s.UpdatedAt = time.Now()
}
