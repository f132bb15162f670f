package feynman

import (
	"math"

	"feynread/internal/book"
)

// Complete reports whether the book satisfies the learn-by-teaching
// completion bar:
//
//   - the best teaching attempt passes,
//   - at least one QA session exists, the best session average passes, and
//     every session that has scored questions individually passes,
//   - the combined final score passes.
//
// The QA side is deliberately stricter than the teaching side: a single
// historically-failing session blocks completion even if a later session
// scored higher. A weak round of challenge questions signals an unresolved
// gap in understanding.
//
// Only numeric scores are consulted. The Passed booleans stored on records
// are display caches and never feed this predicate.
func Complete(b *book.Book) bool {
	teachingBest := float64(TeachingBest(b.PracticeRecords))
	if teachingBest < PassThreshold {
		return false
	}

	if len(b.QAPracticeRecords) == 0 {
		return false
	}
	for _, s := range b.QAPracticeRecords {
		if !sessionPasses(s) {
			return false
		}
	}
	qaBest := QABest(b.QAPracticeRecords)
	if qaBest < PassThreshold {
		return false
	}

	final := math.Round((teachingBest + qaBest) / 2)
	return final >= PassThreshold
}

// sessionPasses reports whether a single session clears the bar. Sessions
// with no scored questions yet don't count against the book.
func sessionPasses(s book.QASession) bool {
	scored := false
	for _, q := range s.Questions {
		if q.Scored() {
			scored = true
			break
		}
	}
	if !scored {
		return true
	}
	return SessionAverage(s) >= PassThreshold
}

// NextStatus re-derives the book's status after a practice mutation.
// Completion forces finished from any state; losing completion (through a
// deletion or a new low-scoring session) demotes finished back to reading;
// otherwise the status is left alone.
func NextStatus(b *book.Book) book.Status {
	if Complete(b) {
		return book.StatusFinished
	}
	if b.Status == book.StatusFinished {
		return book.StatusReading
	}
	return b.Status
}

// StartReading applies the one-way unread → reading nudge fired when the
// user first interacts with a book (begins analysis, opens practice, or
// submits a QA session). It reports whether the status changed. It never
// moves a book backward and is independent of the completion predicate.
func StartReading(b *book.Book) bool {
	if b.Status != book.StatusUnread {
		return false
	}
	b.Status = book.StatusReading
	return true
}
