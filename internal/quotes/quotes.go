// Package quotes holds the preset motivational quotes and the one-time
// seeding of them into the app settings.
package quotes

import (
	"feynread/internal/book"
	"feynread/internal/store"
)

// presets maps language code to the built-in quote list.
var presets = map[string][]preset{
	"zh": {
		{"书籍是人类进步的阶梯。", "高尔基"},
		{"读书破万卷，下笔如有神。", "杜甫"},
		{"如果你不能简单地解释它，说明你还没有真正理解它。", "费曼"},
		{"学而不思则罔，思而不学则殆。", "孔子"},
		{"敏而好学，不耻下问。", "孔子"},
	},
	"en": {
		{"A reader lives a thousand lives before he dies.", "George R.R. Martin"},
		{"If you can't explain it simply, you don't understand it well enough.", "Richard Feynman"},
		{"The man who does not read has no advantage over the man who cannot read.", "Mark Twain"},
		{"What I cannot create, I do not understand.", "Richard Feynman"},
		{"Reading without reflecting is like eating without digesting.", "Edmund Burke"},
	},
}

type preset struct {
	text   string
	author string
}

// Presets returns the built-in quotes for a language, falling back to
// Chinese (the default UI language) for unknown codes.
func Presets(language string) []store.Quote {
	items, ok := presets[language]
	if !ok {
		items = presets["zh"]
	}
	out := make([]store.Quote, len(items))
	for i, q := range items {
		out[i] = store.Quote{
			ID:     book.NewID(),
			Text:   q.text,
			Author: q.author,
			Preset: true,
		}
	}
	return out
}

// Seed adds the preset quotes to the settings once, keyed on the
// QuotesInitialized flag. User-added quotes are left alone. Reports whether
// the settings changed.
func Seed(settings *store.AppSettings) bool {
	if settings.QuotesInitialized {
		return false
	}
	settings.Quotes = append(Presets(settings.Language), settings.Quotes...)
	settings.QuotesInitialized = true
	return true
}
