package render

import (
	"strconv"

	"github.com/vere-app/vere/internal/domain/profile"
)

var avatarSizes = map[string]int{
	"small":  64,
	"medium": 96,
	"large":  128,
}

// customPage is the only layout that reads layoutSettings: alignment,
// avatar size and the visibility toggles. Absent toggles default to on.
func customPage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)
	settings := d.LayoutSettings

	maxWidth := settings.MaxWidth
	if maxWidth <= 0 {
		maxWidth = 640
	}

	align := "center"
	switch settings.Alignment {
	case "left", "right":
		align = settings.Alignment
	}

	content := el("div", "layout-column").
		style("max-width", strconv.Itoa(maxWidth)+"px").
		style("margin", "0 auto").
		style("padding", "48px 16px").
		style("text-align", align)

	if enabled(settings.ShowAvatar) {
		size, ok := avatarSizes[settings.AvatarSize]
		if !ok {
			size = avatarSizes["medium"]
		}
		content.add(avatarNode(d, size))
	}

	content.add(nameHeading(d, th, true))

	if enabled(settings.ShowTagline) {
		content.add(taglineNode(d, th))
	}
	content.add(aboutNode(d, th))

	if enabled(settings.ShowSocial) {
		content.add(socialRow(d.SocialLinks, th.NameColor))
	}
	content.add(Sections(d.Sections, th))

	return pageRoot("layout-custom", d, DefaultPersonalBg).
		add(content, audioControl(d))
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}
