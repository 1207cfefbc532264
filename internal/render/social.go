package render

import "strings"

// providerOrder fixes the social icon row ordering. Providers outside
// this set are not part of the icon library and are skipped.
var providerOrder = []string{
	"website",
	"github",
	"twitter",
	"x",
	"linkedin",
	"instagram",
	"youtube",
	"tiktok",
	"twitch",
	"facebook",
	"dribbble",
	"behance",
	"email",
}

// socialRow renders the icon row. Blank URLs are ignored; every link
// opens in a new tab. Returns nil when no provider has a URL.
func socialRow(links map[string]string, color string) *Node {
	if len(links) == 0 {
		return nil
	}

	row := el("div", "social-row").
		style("display", "flex").
		style("gap", "12px").
		style("justify-content", "center")

	for _, provider := range providerOrder {
		url := strings.TrimSpace(links[provider])
		if url == "" {
			continue
		}
		if provider == "email" && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		row.add(el("a", "social-link", "social-"+provider).
			attr("href", url).
			attr("target", "_blank").
			attr("rel", "noopener noreferrer").
			attr("aria-label", provider).
			style("color", color).
			text(provider))
	}

	if len(row.Children) == 0 {
		return nil
	}
	return row
}
