package theme

import "github.com/vere-app/vere/internal/domain/profile"

// Built-in theme library. These ship with the app and resolve first,
// before community and user-saved themes.
var builtin = []Theme{
	{
		ID:          "midnight",
		Name:        "Midnight",
		ProfileType: profile.KindPersonal,
		Tokens: map[string]any{
			TokenBgColor:    "#050505",
			TokenBlockColor: "#111111",
			TokenNameColor:  "#ffffff",
			TokenFontFamily: "Inter, sans-serif",
		},
	},
	{
		ID:          "neon",
		Name:        "Neon",
		ProfileType: profile.KindPersonal,
		Tokens: map[string]any{
			TokenBgColor:     "#0a0a14",
			TokenBlockColor:  "#14142b",
			TokenNameColor:   "#39ff14",
			TokenAccentColor: "#ff2bd6",
			TokenFontFamily:  "'JetBrains Mono', monospace",
		},
	},
	{
		ID:          "daybreak",
		Name:        "Daybreak",
		ProfileType: profile.KindPersonal,
		Tokens: map[string]any{
			TokenBgColor:    "#fdf6ec",
			TokenBlockColor: "#ffffff",
			TokenNameColor:  "#1f2937",
			TokenDescColor:  "rgba(17,24,39,0.9)",
			TokenFontFamily: "Georgia, serif",
		},
	},
	{
		ID:          "slate",
		Name:        "Slate",
		ProfileType: profile.KindProfessional,
		Tokens: map[string]any{
			TokenBgColor:      "#0f172a",
			TokenSectionBg:    "#1e293b",
			TokenNameColor:    "#f8fafc",
			TokenAccentColor:  "#38bdf8",
			TokenHeadingColor: "#e2e8f0",
			TokenFontFamily:   "Inter, sans-serif",
		},
	},
	{
		ID:          "paper",
		Name:        "Paper",
		ProfileType: profile.KindProfessional,
		Tokens: map[string]any{
			TokenBgColor:      "#f8fafc",
			TokenSectionBg:    "#ffffff",
			TokenNameColor:    "#0f172a",
			TokenAccentColor:  "#2563eb",
			TokenHeadingColor: "#1e293b",
			TokenFontFamily:   "'Source Serif Pro', serif",
		},
	},
	{
		ID:          "ivory",
		Name:        "Ivory",
		ProfileType: profile.KindResume,
		Tokens: map[string]any{
			TokenBgColor:      "#ffffff",
			TokenTextColor:    "#1f2937",
			TokenHeadingColor: "#111827",
			TokenAccentColor:  "#374151",
			TokenFontFamily:   "Garamond, serif",
		},
	},
	{
		ID:          "forest",
		Name:        "Forest",
		ProfileType: profile.KindVtree,
		Tokens: map[string]any{
			TokenBgColor:     "#06281e",
			TokenButtonColor: "#0d9467",
			TokenNameColor:   "#e7f9f1",
			TokenFontFamily:  "Inter, sans-serif",
		},
	},
}

// BaseThemesByType returns the built-in themes for one profile kind.
func BaseThemesByType(kind profile.Kind) []Theme {
	out := make([]Theme, 0)
	for _, t := range builtin {
		if t.ProfileType == kind {
			out = append(out, t)
		}
	}
	return out
}

// GetBuiltin resolves a built-in theme by slug id, or nil.
func GetBuiltin(id string) *Theme {
	for i := range builtin {
		if builtin[i].ID == id {
			t := builtin[i]
			return &t
		}
	}
	return nil
}
