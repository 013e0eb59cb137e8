package theme

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		pref       Preference
		systemDark bool
		want       bool
	}{
		{"DarkIgnoresSystemLight", Dark, false, true},
		{"DarkIgnoresSystemDark", Dark, true, true},
		{"LightIgnoresSystemLight", Light, false, false},
		{"LightIgnoresSystemDark", Light, true, false},
		{"AutoFollowsSystemLight", Auto, false, false},
		{"AutoFollowsSystemDark", Auto, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.pref, tc.systemDark); got != tc.want {
				t.Errorf("Resolve(%s, %v) = %v, want %v", tc.pref, tc.systemDark, got, tc.want)
			}
		})
	}
}

func TestParsePreference(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		for _, s := range []string{"light", "dark", "auto"} {
			if got := ParsePreference(s); string(got) != s {
				t.Errorf("ParsePreference(%q) = %s", s, got)
			}
		}
	})

	t.Run("InvalidDegradesToAuto", func(t *testing.T) {
		for _, s := range []string{"", "DARK", "system", "0", "Light "} {
			if got := ParsePreference(s); got != Auto {
				t.Errorf("ParsePreference(%q) = %s, want auto", s, got)
			}
		}
	})
}

func TestPreferenceValid(t *testing.T) {
	if !Light.Valid() || !Dark.Valid() || !Auto.Valid() {
		t.Error("enumerated values must be valid")
	}
	if Preference("midnight").Valid() {
		t.Error("unknown value must be invalid")
	}
}

func TestPalettes(t *testing.T) {
	t.Run("Names", func(t *testing.T) {
		if DarkPalette().Name != "dark" || LightPalette().Name != "light" {
			t.Error("palette names must match appearance")
		}
	})

	t.Run("GlamourStyles", func(t *testing.T) {
		if DarkPalette().GlamourStyle != "dark" || LightPalette().GlamourStyle != "light" {
			t.Error("glamour styles must match appearance")
		}
	})

	t.Run("DistinctToggleIcons", func(t *testing.T) {
		if DarkPalette().ToggleIcon == LightPalette().ToggleIcon {
			t.Error("toggle iconography must differ between appearances")
		}
	})
}
