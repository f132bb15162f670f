package review

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"feynread/internal/book"
)

// maxContextChars bounds how much of a book's imported document is included
// as grounding context in a prompt.
const maxContextChars = 6000

const teachingSystemPrompt = `You are a rigorous but encouraging reading coach. A reader is practicing the Feynman technique: they explain a book in their own words, and you grade the explanation. Judge only what the explanation demonstrates, not what the reader might know.`

const questionSystemPrompt = `You generate challenge questions about a book, each asked from the point of view of a specific persona. Questions must be answerable by someone who genuinely understood the book, and should expose shallow understanding.`

const answerSystemPrompt = `You grade a reader's answer to a challenge question about a book. Judge correctness, depth, and how directly the answer engages the question. Be specific about what is missing.`

const phaseSystemPrompt = `You are a reading companion guiding a structured analysis of a book. Write for the reader in clear, direct prose. Use markdown headings and short paragraphs.`

// bookContext renders the descriptive and imported-document context shared
// by all prompts.
func bookContext(b *book.Book) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Book: %s\n", b.Title)
	if b.Author != "" {
		fmt.Fprintf(&sb, "Author: %s\n", b.Author)
	}
	if b.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", b.Description)
	}

	if b.DocumentContent != "" {
		excerpt := truncate(b.DocumentContent, maxContextChars)
		fmt.Fprintf(&sb, "\nSource material (may be truncated):\n%s\n", excerpt)
	}

	return sb.String()
}

// truncate cuts s to at most max bytes without splitting a rune, so
// multi-byte source material (Chinese books, typically) stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func buildTeachingPrompt(b *book.Book, essay string) string {
	var sb strings.Builder
	sb.WriteString(bookContext(b))
	fmt.Fprintf(&sb, "\nThe reader's explanation of the book:\n%s\n", essay)
	sb.WriteString(`
Grade the explanation. Score each dimension 0-100:
- accuracy: are the book's ideas represented correctly?
- completeness: are the important ideas covered?
- clarity: could a newcomer follow this explanation?
- overall: your holistic judgment, not necessarily the average.

Write a review of 3-6 sentences: what works, what is wrong or missing, and the single most valuable improvement.`)
	return sb.String()
}

func buildQuestionPrompt(b *book.Book, personas []Persona) string {
	var sb strings.Builder
	sb.WriteString(bookContext(b))
	sb.WriteString("\nGenerate one question per persona, in order:\n")
	for i, p := range personas {
		fmt.Fprintf(&sb, "%d. %s — %s\n", i+1, p.Name, p.Style)
	}
	sb.WriteString("\nEach question must stand alone, target a central idea of the book, and be answerable in a short paragraph.")
	return sb.String()
}

func buildAnswerPrompt(b *book.Book, q book.PersonaQuestion, answer string) string {
	var sb strings.Builder
	sb.WriteString(bookContext(b))
	fmt.Fprintf(&sb, "\nQuestion (asked by %s): %s\n", q.PersonaName, q.Question)
	fmt.Fprintf(&sb, "\nThe reader's answer:\n%s\n", answer)
	sb.WriteString(`
Score the answer 0-100 and write a review of 2-4 sentences. A score of 60 means the answer shows real understanding with notable gaps; reserve 90+ for answers that would satisfy the persona completely.`)
	return sb.String()
}

func buildPhasePrompt(b *book.Book, title, focus string) string {
	var sb strings.Builder
	sb.WriteString(bookContext(b))
	fmt.Fprintf(&sb, "\nAnalysis phase: %s\n%s\n", title, focus)
	return sb.String()
}
