package dialog

// StyleBase is the designated default style. Every node must carry a
// StyleBase message; it is the fallback when a session's rolled style has no
// variant on a node.
const StyleBase = "base"

// Styles is the closed set of response styles a session can roll.
// The set is fixed at the code level; graph authors choose per node which
// variants to provide beyond the mandatory base entry.
var Styles = []string{
	StyleBase,
	"formal",
	"casual",
	"humorous",
	"inquisitive",
	"narrative",
	"concise",
	"encouraging",
	"playful",
}

// ValidStyle reports whether name is one of the known styles.
func ValidStyle(name string) bool {
	for _, s := range Styles {
		if s == name {
			return true
		}
	}
	return false
}
