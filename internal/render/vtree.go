package render

import "github.com/vere-app/vere/internal/domain/profile"

// vtreePage is the legacy single-purpose link-list template. It shares
// only the color helpers with the other renderers.
func vtreePage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)
	buttonColor := pickColor(d.ButtonColor, d.AccentColor, DefaultButtonColor)

	content := el("div", "vtree-column").
		style("max-width", "520px").
		style("margin", "0 auto").
		style("padding", "48px 16px").
		style("text-align", "center").
		add(
			avatarNode(d, 88),
			el("h1", "profile-name").style("color", th.NameColor).text(displayName(d)),
			taglineNode(d, th),
			aboutNode(d, th),
			linkStack(d, th, buttonColor),
			socialRow(d.SocialLinks, th.NameColor),
		)

	return pageRoot("vtree-page", d, DefaultPersonalBg).
		add(content, audioControl(d))
}
