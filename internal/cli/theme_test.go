package cli

import "testing"

func TestLookupTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, ok := LookupTheme(name)
		if !ok {
			t.Errorf("theme %q should exist", name)
		}
		if theme.Name != name {
			t.Errorf("theme %q has mismatched name %q", name, theme.Name)
		}
	}

	if _, ok := LookupTheme("neon"); ok {
		t.Error("unknown theme should not resolve")
	}
}

func TestThemeOrDefault(t *testing.T) {
	if got := ThemeOrDefault(""); got.Name != DefaultThemeName {
		t.Errorf("empty name resolved to %q", got.Name)
	}
	if got := ThemeOrDefault("neon"); got.Name != DefaultThemeName {
		t.Errorf("unknown name resolved to %q", got.Name)
	}
	if got := ThemeOrDefault("midnight"); got.Name != "midnight" {
		t.Errorf("known name resolved to %q", got.Name)
	}
}
