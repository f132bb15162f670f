// Package phases defines the fixed ordered sequence of six AI-guided
// analysis phases a book moves through. Book.CurrentPhase indexes into this
// sequence, and Book.Responses is keyed by phase ID.
package phases

// Phase is one step of the guided analysis pipeline.
type Phase struct {
	ID    string
	Title string
	// Focus is the analytical instruction handed to the LLM for this phase.
	Focus string
}

// Count is the number of phases in the pipeline.
const Count = 6

var all = [Count]Phase{
	{
		ID:    "overview",
		Title: "Overview",
		Focus: "Summarize what the book is about, who it is for, and the single question it tries to answer.",
	},
	{
		ID:    "core_concepts",
		Title: "Core Concepts",
		Focus: "List and explain the key concepts and terms the book introduces, in plain language a beginner would follow.",
	},
	{
		ID:    "structure",
		Title: "Structure",
		Focus: "Lay out how the argument is organized chapter by chapter and how the parts build on each other.",
	},
	{
		ID:    "deep_dive",
		Title: "Deep Dive",
		Focus: "Work through the book's central argument step by step, including the evidence it leans on and where it is weakest.",
	},
	{
		ID:    "connections",
		Title: "Connections",
		Focus: "Relate the book's ideas to everyday situations and to other well-known works in the field.",
	},
	{
		ID:    "summary",
		Title: "Summary",
		Focus: "Condense the whole book into the shortest faithful explanation, as if teaching it to someone in five minutes.",
	},
}

// All returns the six phases in order.
func All() []Phase {
	return all[:]
}

// ByIndex returns the phase at position i (0-based).
func ByIndex(i int) (Phase, bool) {
	if i < 0 || i >= Count {
		return Phase{}, false
	}
	return all[i], true
}

// ByID returns the phase with the given id.
func ByID(id string) (Phase, bool) {
	for _, p := range all {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}
