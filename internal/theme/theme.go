// Package theme owns theme preference state, persistence, and the rendered
// light/dark appearance shared by the rest of the UI.
package theme

// StorageKey is the single key used in the preference store.
const StorageKey = "theme-preference"

// Preference is the user- or default-selected mode controlling the color
// scheme. Auto defers to the system signal.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
	Auto  Preference = "auto"
)

// ParsePreference maps a stored string to a Preference.
// Absent or invalid values degrade to Auto.
func ParsePreference(s string) Preference {
	switch Preference(s) {
	case Light:
		return Light
	case Dark:
		return Dark
	case Auto:
		return Auto
	default:
		return Auto
	}
}

// Valid reports whether p is one of the three enumerated values.
func (p Preference) Valid() bool {
	return p == Light || p == Dark || p == Auto
}

// Resolve returns the effective appearance for a preference: true means
// dark. Explicit preferences ignore the system signal; Auto follows it.
func Resolve(pref Preference, systemDark bool) bool {
	if pref == Dark {
		return true
	}
	if pref == Auto && systemDark {
		return true
	}
	return false
}
