// Package feynman holds the pure scoring and completion logic for the
// learn-by-teaching workflow. Nothing here touches storage; the repository
// layer calls these functions after every practice mutation.
package feynman

import (
	"math"

	"feynread/internal/book"
)

// PassThreshold is the minimum score that counts as a pass, for individual
// questions, teaching attempts, session averages, and the final score alike.
const PassThreshold = 60

// TeachingBest returns the highest overall score across all teaching
// attempts, or 0 if there are none. One excellent attempt fully determines
// the teaching side regardless of how many weak attempts surround it.
func TeachingBest(records []book.TeachingRecord) int {
	best := 0
	for _, r := range records {
		if r.Scores.Overall > best {
			best = r.Scores.Overall
		}
	}
	return best
}

// SessionAverage returns the mean score of the session's scored questions.
// A session with no scored questions contributes 0.
func SessionAverage(s book.QASession) float64 {
	sum, n := 0, 0
	for _, q := range s.Questions {
		if q.Scored() {
			sum += *q.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// QABest returns the highest session average across all QA sessions, or 0
// if there are none.
func QABest(sessions []book.QASession) float64 {
	best := 0.0
	for _, s := range sessions {
		if avg := SessionAverage(s); avg > best {
			best = avg
		}
	}
	return best
}

// BestScore computes the book's derived summary score: the best teaching
// attempt averaged with the best QA session, rounded to the nearest integer.
func BestScore(b *book.Book) int {
	teaching := float64(TeachingBest(b.PracticeRecords))
	qa := QABest(b.QAPracticeRecords)
	return int(math.Round((teaching + qa) / 2))
}
