package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vere-app/vere/internal/domain/profile"
)

// Documented fallback constants. Renderers must never emit an empty color.
const (
	DefaultPersonalBg     = "#050505"
	DefaultProfessionalBg = "#f1f5f9"
	DefaultResumeBg       = "#ffffff"
	DefaultNameColor      = "#ffffff"
	DefaultBlockColor     = "#111111"
	DefaultAccentColor    = "#38bdf8"
	DefaultButtonColor    = "#1f2937"
	DefaultOverlay        = 0.3

	descColorDark      = "rgba(17,24,39,0.9)"
	descColorLight     = "rgba(255,255,255,0.85)"
	luminanceThreshold = 0.6
)

// parseHex accepts #rgb and #rrggbb.
func parseHex(color string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var parsed [3]int
	for i := 0; i < 3; i++ {
		n, err := parseHexByte(s[i*2 : i*2+2])
		if err != nil {
			return 0, 0, 0, false
		}
		parsed[i] = n
	}
	return parsed[0], parsed[1], parsed[2], true
}

func parseHexByte(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%02x", &n)
	return n, err
}

// Luminance computes relative luminance of a hex color using the sRGB
// gamma formula. The second return is false for unparseable input.
func Luminance(color string) (float64, bool) {
	r, g, b, ok := parseHex(color)
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b), true
}

func linearize(channel int) float64 {
	c := float64(channel) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// DescriptionColor picks the description text color from background
// luminance when no explicit color is stored: light backgrounds get dark
// text, dark (or unparseable) backgrounds get light text.
func DescriptionColor(bgColor string) string {
	lum, ok := Luminance(bgColor)
	if ok && lum > luminanceThreshold {
		return descColorDark
	}
	return descColorLight
}

func rgba(r, g, b int, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, g, b, alpha)
}

// glowShadow layers the name color at decreasing opacity plus two dark
// drop shadows for contrast. Used by default/linktree/guns/custom layouts;
// linkedin and minimal deliberately stay flat.
func glowShadow(nameColor string) string {
	r, g, b, ok := parseHex(nameColor)
	if !ok {
		r, g, b = 255, 255, 255
	}
	return strings.Join([]string{
		"0 0 6px " + rgba(r, g, b, 0.95),
		"0 0 14px " + rgba(r, g, b, 0.6),
		"0 0 28px " + rgba(r, g, b, 0.35),
		"0 1px 2px rgba(0,0,0,0.85)",
		"0 2px 8px rgba(0,0,0,0.6)",
	}, ", ")
}

// backgroundStyles resolves the page background: an image gets a dimming
// overlay composed under it, otherwise the solid color (or fallback).
func backgroundStyles(d profile.Data, fallbackColor string) map[string]string {
	if d.BgImage != "" {
		overlay := DefaultOverlay
		if d.BgOverlay != nil {
			overlay = clamp01(*d.BgOverlay)
		}
		return map[string]string{
			"background-image": fmt.Sprintf(
				"linear-gradient(rgba(0,0,0,%.2f), rgba(0,0,0,%.2f)), url('%s')",
				overlay, overlay, sanitizeURL(d.BgImage),
			),
			"background-size":     "cover",
			"background-position": "center",
		}
	}

	color := d.BgColor
	if color == "" {
		color = fallbackColor
	}
	return map[string]string{"background-color": color}
}

// effectiveBg is what luminance-based decisions should look at: a dimmed
// background image counts as dark regardless of the stored color.
func effectiveBg(d profile.Data, fallbackColor string) string {
	if d.BgImage != "" {
		return "#000000"
	}
	if d.BgColor != "" {
		return d.BgColor
	}
	return fallbackColor
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var urlSanitizer = strings.NewReplacer("'", "%27", "\"", "%22", "(", "%28", ")", "%29", "\\", "%5C")

func sanitizeURL(u string) string {
	return urlSanitizer.Replace(u)
}
