package review

// Persona is a named viewpoint used to generate challenge questions.
type Persona struct {
	ID   string
	Name string
	// Style steers the question generator's tone and angle of attack.
	Style string
}

// Presets is the built-in persona catalog. QA sessions draw their
// questioners from here.
var Presets = []Persona{
	{
		ID:    "skeptical_investor",
		Name:  "Skeptical Investor",
		Style: "Demands evidence and hard numbers. Pokes at claims that sound too good to be true.",
	},
	{
		ID:    "curious_child",
		Name:  "Curious Child",
		Style: "Asks deceptively simple why-questions that expose fuzzy understanding.",
	},
	{
		ID:    "strict_professor",
		Name:  "Strict Professor",
		Style: "Probes definitions, edge cases, and the limits of the book's argument.",
	},
	{
		ID:    "practitioner",
		Name:  "Pragmatic Practitioner",
		Style: "Cares only about application. Asks how the ideas survive contact with reality.",
	},
	{
		ID:    "devils_advocate",
		Name:  "Devil's Advocate",
		Style: "Argues the opposite position and demands the strongest counter-argument.",
	},
}

// PersonaByID looks up a preset persona.
func PersonaByID(id string) (Persona, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// PickPersonas returns n personas from the catalog, cycling when n exceeds
// the catalog size.
func PickPersonas(n int) []Persona {
	if n <= 0 {
		return nil
	}
	out := make([]Persona, n)
	for i := range out {
		out[i] = Presets[i%len(Presets)]
	}
	return out
}
