// Package naming renders name records to display text.
//
// The engine treats naming as an external service; this is the default
// implementation used when no richer translation layer is wired in. Word
// slots index into a fixed word table and are rendered in slot order.
package naming

import (
	"strings"

	"github.com/warp/garrison-engine/garrison"
)

// DefaultWords is the built-in word table. Indices in name records refer to
// positions in this slice.
var DefaultWords = []string{
	"oak", "iron", "shield", "hammer", "storm", "ash", "granite", "ember",
	"wolf", "spear", "gate", "watch", "banner", "frost", "anvil", "crag",
}

// Translator renders name records against a word table.
type Translator struct {
	words []string
}

// NewTranslator returns a translator over the given word table, or over
// DefaultWords when words is nil.
func NewTranslator(words []string) *Translator {
	if words == nil {
		words = DefaultWords
	}
	return &Translator{words: words}
}

// Render returns the display form of a record: the filled word slots joined
// in slot order, title-cased per word. An all-empty record renders as "".
// preferAlias is accepted for interface compatibility; alias handling is the
// caller's concern since the record itself carries no alias.
func (t *Translator) Render(rec garrison.NameRecord, preferAlias bool) string {
	var parts []string
	for _, w := range rec.Words {
		if w == garrison.NoID {
			continue
		}
		if w >= 0 && int(w) < len(t.words) {
			parts = append(parts, title(t.words[w]))
		}
	}
	return strings.Join(parts, " ")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
