package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"feynread/internal/book"
	"feynread/internal/review"
	"feynread/internal/store"
)

var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Persona Q&A practice: answer challenge questions about the book",
}

var qaStartCmd = &cobra.Command{
	Use:   "start <book>",
	Short: "Generate a new batch of persona questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		b, err := findBook(ctx, s, args[0])
		if err != nil {
			return err
		}

		n, _ := cmd.Flags().GetInt("questions")
		if n < 3 || n > 5 {
			return fmt.Errorf("--questions must be 3-5")
		}

		reviewer, err := newReviewer(ctx, s)
		if err != nil {
			return err
		}

		if _, err := s.StartReading(ctx, b.ID); err != nil {
			return err
		}

		fmt.Println("Generating questions...")
		questions, err := reviewer.GenerateQuestions(ctx, b, review.PickPersonas(n))
		if err != nil {
			return err
		}

		session, err := s.AddQASession(ctx, b.ID, store.QASessionInput{
			Questions: questions,
			AllPassed: review.AllPassed(questions),
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nSession %s:\n", shortID(session.ID))
		printQuestions(session.Questions)
		return nil
	},
}

var qaAnswerCmd = &cobra.Command{
	Use:   "answer <book> <session> <question-number>",
	Short: "Answer one question and have it graded (reads stdin or --file)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		b, err := findBook(ctx, s, args[0])
		if err != nil {
			return err
		}
		session, err := findSession(b, args[1])
		if err != nil {
			return err
		}

		num, err := strconv.Atoi(args[2])
		if err != nil || num < 1 || num > len(session.Questions) {
			return fmt.Errorf("question number must be 1-%d", len(session.Questions))
		}

		answer, err := readInput(cmd)
		if err != nil {
			return err
		}
		if answer == "" {
			return fmt.Errorf("empty answer")
		}

		reviewer, err := newReviewer(ctx, s)
		if err != nil {
			return err
		}

		question := session.Questions[num-1]
		fmt.Printf("Grading your answer to %s...\n", question.PersonaName)
		graded, err := reviewer.ScoreAnswer(ctx, b, question, answer)
		if err != nil {
			return err
		}

		// Only the answered question is touched; the rest of the list is
		// submitted unchanged.
		questions := make([]book.PersonaQuestion, len(session.Questions))
		copy(questions, session.Questions)
		review.ApplyAnswer(&questions[num-1], answer, graded)
		allPassed := review.AllPassed(questions)

		err = s.UpdateQASession(ctx, b.ID, session.ID, book.QASessionPatch{
			Questions: questions,
			AllPassed: &allPassed,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n\nscore: %d\n", graded.Review, graded.Score)

		updated, _ := s.Book(ctx, b.ID)
		if updated != nil {
			fmt.Printf("best score: %d  status: %s\n", updated.BestScore, updated.Status)
		}
		return nil
	},
}

var qaShowCmd = &cobra.Command{
	Use:   "show <book> <session>",
	Short: "Show a session's questions, answers, and scores",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		b, err := findBook(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		session, err := findSession(b, args[1])
		if err != nil {
			return err
		}
		printQuestions(session.Questions)
		return nil
	},
}

var qaDeleteCmd = &cobra.Command{
	Use:   "delete <book> <session>",
	Short: "Delete a whole Q&A session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		b, err := findBook(ctx, s, args[0])
		if err != nil {
			return err
		}
		session, err := findSession(b, args[1])
		if err != nil {
			return err
		}
		if err := s.DeleteQASession(ctx, b.ID, session.ID); err != nil {
			return err
		}

		updated, _ := s.Book(ctx, b.ID)
		if updated != nil {
			fmt.Printf("best score: %d  status: %s\n", updated.BestScore, updated.Status)
		}
		return nil
	},
}

func init() {
	qaStartCmd.Flags().Int("questions", 3, "Number of questions to generate (3-5)")
	qaAnswerCmd.Flags().String("file", "", "Read the answer from a file instead of stdin")

	qaCmd.AddCommand(qaStartCmd)
	qaCmd.AddCommand(qaAnswerCmd)
	qaCmd.AddCommand(qaShowCmd)
	qaCmd.AddCommand(qaDeleteCmd)
}

func findSession(b *book.Book, ref string) (*book.QASession, error) {
	for i := range b.QAPracticeRecords {
		s := &b.QAPracticeRecords[i]
		if s.ID == ref || shortID(s.ID) == ref {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no Q&A session %q on %q", ref, b.Title)
}

func printQuestions(questions []book.PersonaQuestion) {
	for i, q := range questions {
		fmt.Printf("%d. [%s] %s\n", i+1, q.PersonaName, q.Question)
		if q.UserAnswer != "" {
			fmt.Printf("   answer: %s\n", q.UserAnswer)
		}
		if q.Scored() {
			fmt.Printf("   score: %d — %s\n", *q.Score, q.AIReview)
		}
	}
}
