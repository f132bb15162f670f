package feynman

import (
	"testing"

	"feynread/internal/book"
)

func intp(n int) *int { return &n }

func teaching(overalls ...int) []book.TeachingRecord {
	records := make([]book.TeachingRecord, len(overalls))
	for i, n := range overalls {
		records[i] = book.TeachingRecord{Scores: book.ScoreSet{Overall: n}}
	}
	return records
}

// session builds a QA session from question scores; a negative score means
// the question is unscored.
func session(scores ...int) book.QASession {
	s := book.QASession{}
	for _, n := range scores {
		q := book.PersonaQuestion{}
		if n >= 0 {
			q.Score = intp(n)
		}
		s.Questions = append(s.Questions, q)
	}
	return s
}

func TestTeachingBest(t *testing.T) {
	tests := []struct {
		name    string
		records []book.TeachingRecord
		want    int
	}{
		{"no attempts", nil, 0},
		{"single attempt", teaching(72), 72},
		{"best of many", teaching(40, 88, 55), 88},
		{"weak attempts don't drag down", teaching(90, 10, 10, 10), 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TeachingBest(tt.records); got != tt.want {
				t.Errorf("TeachingBest() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionAverage(t *testing.T) {
	tests := []struct {
		name string
		s    book.QASession
		want float64
	}{
		{"no questions", session(), 0},
		{"nothing scored", session(-1, -1, -1), 0},
		{"all scored", session(70, 80, 75), 75},
		{"unscored questions excluded", session(60, -1, 90), 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionAverage(tt.s); got != tt.want {
				t.Errorf("SessionAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQABest(t *testing.T) {
	sessions := []book.QASession{
		session(40, 50),
		session(70, 80, 75),
		session(-1, -1),
	}
	if got := QABest(sessions); got != 75 {
		t.Errorf("QABest() = %v, want 75", got)
	}
	if got := QABest(nil); got != 0 {
		t.Errorf("QABest(nil) = %v, want 0", got)
	}
}

func TestBestScore(t *testing.T) {
	tests := []struct {
		name string
		b    book.Book
		want int
	}{
		{"empty book", book.Book{}, 0},
		{
			"teaching only halves",
			book.Book{PracticeRecords: teaching(80)},
			40,
		},
		{
			"qa only halves",
			book.Book{QAPracticeRecords: []book.QASession{session(80)}},
			40,
		},
		{
			"teaching 65 with qa 70/80/75 rounds to 70",
			book.Book{
				PracticeRecords:   teaching(65),
				QAPracticeRecords: []book.QASession{session(70, 80, 75)},
			},
			70,
		},
		{
			"halves round up",
			book.Book{
				PracticeRecords:   teaching(61),
				QAPracticeRecords: []book.QASession{session(70)},
			},
			66, // (61+70)/2 = 65.5
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestScore(&tt.b); got != tt.want {
				t.Errorf("BestScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
