package render

import (
	"strconv"

	"github.com/vere-app/vere/internal/domain/profile"
)

// personalPage dispatches a personal profile to its named layout. The
// free-form canvas is a distinct escape hatch and is checked before any
// named layout. Unknown or unset layout values resolve to the default
// layout, never an error.
func personalPage(p profile.Profile) *Node {
	if len(p.Data.VereElements) > 0 {
		return canvasPage(p)
	}

	switch p.Data.Layout {
	case profile.LayoutLinktree:
		return linktreePage(p)
	case profile.LayoutLinkedin:
		return linkedinPage(p)
	case profile.LayoutGuns:
		return gunsPage(p)
	case profile.LayoutMinimal:
		return minimalPage(p)
	case profile.LayoutCustom:
		return customPage(p)
	default:
		return defaultPage(p)
	}
}

func personalTheme(d profile.Data) SectionTheme {
	th := SectionTheme{
		NameColor:  d.NameColor,
		DescColor:  d.DescColor,
		BlockColor: d.BlockColor,
	}
	if th.NameColor == "" {
		th.NameColor = DefaultNameColor
	}
	if th.DescColor == "" {
		th.DescColor = DescriptionColor(effectiveBg(d, DefaultPersonalBg))
	}
	if th.BlockColor == "" {
		th.BlockColor = DefaultBlockColor
	}
	return th
}

func pageRoot(layoutClass string, d profile.Data, fallbackBg string) *Node {
	root := el("div", "profile-page", layoutClass).
		styles(backgroundStyles(d, fallbackBg)).
		style("min-height", "100vh")
	if d.FontFamily != "" {
		root.style("font-family", d.FontFamily)
	}
	return root
}

func displayName(d profile.Data) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Username
}

func avatarNode(d profile.Data, sizePx int) *Node {
	if d.Avatar == "" {
		return nil
	}
	size := strconv.Itoa(sizePx) + "px"
	return el("img", "profile-avatar").
		attr("src", d.Avatar).
		attr("alt", displayName(d)).
		style("width", size).
		style("height", size).
		style("border-radius", "50%").
		style("object-fit", "cover")
}

func nameHeading(d profile.Data, th SectionTheme, glow bool) *Node {
	h := el("h1", "profile-name").style("color", th.NameColor)
	if glow {
		h.style("text-shadow", glowShadow(th.NameColor))
	}
	return h.text(displayName(d))
}

func taglineNode(d profile.Data, th SectionTheme) *Node {
	if d.Tagline == "" {
		return nil
	}
	return el("p", "profile-tagline").style("color", th.DescColor).text(d.Tagline)
}

func aboutNode(d profile.Data, th SectionTheme) *Node {
	if d.About == "" {
		return nil
	}
	return el("p", "profile-about").style("color", th.DescColor).text(d.About)
}

func defaultPage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)

	content := el("div", "layout-column").
		style("max-width", "640px").
		style("margin", "0 auto").
		style("padding", "48px 16px").
		style("text-align", "center")

	content.add(
		avatarNode(d, 96),
		nameHeading(d, th, true),
	)
	if d.JobTitle != "" {
		content.add(el("p", "profile-job-title").style("color", th.DescColor).text(d.JobTitle))
	}
	content.add(
		taglineNode(d, th),
		aboutNode(d, th),
		socialRow(d.SocialLinks, th.NameColor),
		Sections(d.Sections, th),
	)

	return pageRoot("layout-default", d, DefaultPersonalBg).
		add(content, audioControl(d))
}

func linktreePage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)

	content := el("div", "layout-column").
		style("max-width", "560px").
		style("margin", "0 auto").
		style("padding", "48px 16px").
		style("text-align", "center")

	content.add(
		avatarNode(d, 88),
		nameHeading(d, th, true),
		taglineNode(d, th),
	)

	buttonColor := d.ButtonColor
	if buttonColor == "" {
		buttonColor = th.BlockColor
	}
	content.add(linkStack(d, th, buttonColor))

	content.add(
		socialRow(d.SocialLinks, th.NameColor),
		Sections(nonLinkSections(d.Sections), th),
	)

	return pageRoot("layout-linktree", d, DefaultPersonalBg).
		add(content, audioControl(d))
}

// linkStack turns the profile's link sections and contact links into the
// vertical button list the link-hub layouts are built around.
func linkStack(d profile.Data, th SectionTheme, buttonColor string) *Node {
	stack := el("div", "link-stack").
		style("display", "flex").
		style("flex-direction", "column").
		style("gap", "12px").
		style("margin", "24px 0")

	addButton := func(label, url string) {
		if url == "" {
			return
		}
		if label == "" {
			label = url
		}
		stack.add(el("a", "link-button").
			attr("href", url).
			attr("target", "_blank").
			attr("rel", "noopener noreferrer").
			style("background-color", buttonColor).
			style("color", th.NameColor).
			style("padding", "14px").
			style("border-radius", "10px").
			style("text-decoration", "none").
			text(label))
	}

	for _, s := range sortedSections(d.Sections) {
		if s.Type == profile.SectionLink {
			addButton(s.Title, s.URL)
		}
	}
	for _, link := range d.Contact.Links {
		addButton(link.Service, link.URL)
	}

	if len(stack.Children) == 0 {
		return nil
	}
	return stack
}

func sortedSections(sections []profile.Section) []profile.Section {
	sorted := make([]profile.Section, len(sections))
	copy(sorted, sections)
	stableSortByOrder(sorted)
	return sorted
}

func nonLinkSections(sections []profile.Section) []profile.Section {
	out := make([]profile.Section, 0, len(sections))
	for _, s := range sections {
		if s.Type != profile.SectionLink {
			out = append(out, s)
		}
	}
	return out
}

func linkedinPage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)

	banner := el("div", "profile-banner").
		style("height", "140px").
		style("background-color", pickColor(d.AccentColor, th.BlockColor))

	header := el("div", "profile-header").
		style("padding", "0 24px").
		add(
			avatarNode(d, 112),
			// Flat fill, no glow: this layout deliberately skips the
			// text-shadow treatment.
			nameHeading(d, th, false),
		)
	if d.JobTitle != "" {
		header.add(el("p", "profile-job-title").style("color", th.DescColor).text(d.JobTitle))
	}
	header.add(taglineNode(d, th))

	body := el("div", "profile-body").
		style("max-width", "720px").
		style("margin", "0 auto").
		style("padding", "24px 16px")

	if d.About != "" {
		body.add(headedBlock("About", th).add(aboutNode(d, th)))
	}
	body.add(
		experienceBlock(d.Experience, th),
		educationBlock(d.Education, th),
		skillsBlock(d.Skills, th),
		socialRow(d.SocialLinks, th.NameColor),
		Sections(d.Sections, th),
	)

	return pageRoot("layout-linkedin", d, DefaultPersonalBg).
		add(banner, header, body, audioControl(d))
}

func gunsPage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)

	hero := el("div", "layout-hero").
		style("min-height", "80vh").
		style("display", "flex").
		style("flex-direction", "column").
		style("align-items", "center").
		style("justify-content", "center").
		style("text-align", "center").
		add(
			nameHeading(d, th, true).style("font-size", "64px").style("letter-spacing", "4px"),
			taglineNode(d, th),
			socialRow(d.SocialLinks, th.NameColor),
		)

	footer := el("div", "layout-footer").
		style("max-width", "640px").
		style("margin", "0 auto").
		style("padding", "0 16px 48px").
		add(Sections(d.Sections, th))

	return pageRoot("layout-guns", d, DefaultPersonalBg).
		add(hero, footer, audioControl(d))
}

func minimalPage(p profile.Profile) *Node {
	d := p.Data
	th := personalTheme(d)

	content := el("div", "layout-column").
		style("max-width", "480px").
		style("margin", "0 auto").
		style("padding", "64px 16px").
		add(
			avatarNode(d, 64),
			// Flat fill, same deliberate no-glow rule as linkedin.
			nameHeading(d, th, false),
			taglineNode(d, th),
			aboutNode(d, th),
			socialRow(d.SocialLinks, th.NameColor),
			Sections(d.Sections, th),
		)

	return pageRoot("layout-minimal", d, DefaultPersonalBg).
		add(content, audioControl(d))
}

func pickColor(colors ...string) string {
	for _, c := range colors {
		if c != "" {
			return c
		}
	}
	return DefaultBlockColor
}
