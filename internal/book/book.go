// Package book defines the reading-companion domain entities: books, their
// teaching-practice and persona-Q&A records, and the narrow patch types that
// callers use to mutate them.
package book

import (
	"time"

	"github.com/google/uuid"
)

// Status is the reading lifecycle state of a book.
type Status string

const (
	StatusUnread   Status = "unread"
	StatusReading  Status = "reading"
	StatusFinished Status = "finished"
)

// Tag is a free-form label attached to a book.
type Tag struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Book is the central entity. Its practice collections are append-only;
// BestScore and Status are derived and owned by the repository layer —
// callers never write them directly.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Cover       string `json:"cover,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`

	// DocumentContent is an optional large text blob (an imported document)
	// used as the retrieval-augmentation source for AI prompts.
	DocumentContent string `json:"documentContent,omitempty"`

	Status       Status            `json:"status"`
	CurrentPhase int               `json:"currentPhase"`
	Responses    map[string]string `json:"responses,omitempty"`

	Notes             []Note           `json:"notes"`
	PracticeRecords   []TeachingRecord `json:"practiceRecords"`
	QAPracticeRecords []QASession      `json:"qaPracticeRecords"`

	// BestScore is a denormalized cache of the score aggregator's output,
	// recomputed on every practice mutation. 0-100.
	BestScore int `json:"bestScore"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta holds the optional descriptive fields supplied when adding a book.
type Meta struct {
	Author          string
	Cover           string
	Description     string
	Tags            []Tag
	DocumentContent string
}

// New constructs a fresh unread book with empty practice collections.
func New(title string, meta Meta) *Book {
	now := time.Now()
	return &Book{
		ID:                NewID(),
		Title:             title,
		Author:            meta.Author,
		Cover:             meta.Cover,
		Description:       meta.Description,
		Tags:              meta.Tags,
		DocumentContent:   meta.DocumentContent,
		Status:            StatusUnread,
		CurrentPhase:      0,
		Responses:         map[string]string{},
		Notes:             []Note{},
		PracticeRecords:   []TeachingRecord{},
		QAPracticeRecords: []QASession{},
		BestScore:         0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// NewID returns a collision-resistant record identifier.
func NewID() string {
	return uuid.NewString()
}

// Patch enumerates the caller-mutable fields of a Book. Derived fields
// (BestScore, Status) and the practice collections have no counterpart here,
// so they cannot be overwritten through the generic update path.
type Patch struct {
	Title           *string
	Author          *string
	Cover           *string
	Description     *string
	Tags            *[]Tag
	DocumentContent *string
	CurrentPhase    *int

	// Responses entries are merged per phase; existing phases not named
	// here are left untouched.
	Responses map[string]string
}

// Apply merges the patch into b and bumps UpdatedAt.
func (p Patch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Cover != nil {
		b.Cover = *p.Cover
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.DocumentContent != nil {
		b.DocumentContent = *p.DocumentContent
	}
	if p.CurrentPhase != nil {
		b.CurrentPhase = *p.CurrentPhase
	}
	if len(p.Responses) > 0 {
		if b.Responses == nil {
			b.Responses = map[string]string{}
		}
		for phase, text := range p.Responses {
			b.Responses[phase] = text
		}
	}
	b.UpdatedAt = time.Now()
}
