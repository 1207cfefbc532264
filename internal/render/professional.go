package render

import (
	"strconv"

	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
)

// professionalPage dispatches a professional profile to its view mode.
// Unknown or unset view modes resolve to standard.
func professionalPage(p profile.Profile, sum analytics.Summary) *Node {
	switch p.Data.ViewMode {
	case profile.ViewModeShowcase:
		return showcasePage(p, sum)
	case profile.ViewModeMinimal:
		return minimalProPage(p, sum)
	default:
		return standardPage(p, sum)
	}
}

func professionalTheme(d profile.Data) SectionTheme {
	bg := effectiveBg(d, DefaultProfessionalBg)
	lightBg := false
	if lum, ok := Luminance(bg); ok && lum > luminanceThreshold {
		lightBg = true
	}

	th := SectionTheme{
		NameColor:  pickColor(d.HeadingColor, d.NameColor),
		DescColor:  d.DescColor,
		BlockColor: d.SectionBg,
	}
	if th.NameColor == "" {
		if lightBg {
			th.NameColor = "#0f172a"
		} else {
			th.NameColor = DefaultNameColor
		}
	}
	if th.DescColor == "" {
		th.DescColor = DescriptionColor(bg)
	}
	if th.BlockColor == "" {
		if lightBg {
			th.BlockColor = "#ffffff"
		} else {
			th.BlockColor = "#1e293b"
		}
	}
	return th
}

type stat struct {
	label string
	value int
}

func statCards(class string, stats []stat, th SectionTheme) *Node {
	grid := el("div", class).
		style("display", "grid").
		style("grid-template-columns", "repeat(4, 1fr)").
		style("gap", "12px").
		style("margin", "24px 0")
	for _, s := range stats {
		grid.add(el("div", "stat-card").
			style("background-color", th.BlockColor).
			style("border-radius", "10px").
			style("padding", "16px").
			style("text-align", "center").
			add(
				el("div", "stat-value").style("color", th.NameColor).text(strconv.Itoa(s.value)),
				el("div", "stat-label").style("color", th.DescColor).text(s.label),
			))
	}
	return grid
}

func contactCard(c profile.Contact, th SectionTheme) *Node {
	card := el("div", "contact-card").
		style("background-color", th.BlockColor).
		style("border-radius", "12px").
		style("padding", "20px").
		style("margin-bottom", "16px")

	if c.Email != "" {
		card.add(el("div", "contact-row").style("color", th.DescColor).add(
			el("a").attr("href", "mailto:"+c.Email).text(c.Email),
		))
	}
	if c.Phone != "" {
		card.add(el("div", "contact-row").style("color", th.DescColor).add(
			el("a").attr("href", "tel:"+c.Phone).text(c.Phone),
		))
	}
	if c.Address != "" {
		card.add(el("div", "contact-row").style("color", th.DescColor).text(c.Address))
	}

	if len(card.Children) == 0 {
		return nil
	}
	return card
}

// standardPage: vertical card stack with a centered header and the
// four-metric analytics bar.
func standardPage(p profile.Profile, sum analytics.Summary) *Node {
	d := p.Data
	th := professionalTheme(d)
	nameColor := pickColor(d.NameColor, th.NameColor)

	header := el("div", "pro-header").
		style("text-align", "center").
		style("padding", "48px 16px 0").
		add(avatarNode(d, 112), el("h1", "profile-name").style("color", nameColor).text(displayName(d)))
	if d.JobTitle != "" {
		header.add(el("p", "profile-job-title").style("color", th.DescColor).text(d.JobTitle))
	}
	header.add(taglineNode(d, th))

	// Standard's metric set is deliberately different from showcase's.
	stats := statCards("stats-bar", []stat{
		{"Unique visitors", sum.UniqueViewers},
		{"Views (7 days)", sum.Last7DaysViews},
		{"Skills", len(d.Skills)},
		{"Experience", len(d.Experience)},
	}, th)

	body := el("div", "pro-body").
		style("max-width", "720px").
		style("margin", "0 auto").
		style("padding", "0 16px 48px").
		add(stats, contactCard(d.Contact, th), coreSections(d, th))

	return pageRoot("viewmode-standard", d, DefaultProfessionalBg).
		add(header, body, audioControl(d))
}

// showcasePage: full-bleed hero with an identity block and a four-stat
// grid, content below in a plain container.
func showcasePage(p profile.Profile, sum analytics.Summary) *Node {
	d := p.Data
	th := professionalTheme(d)

	hero := el("div", "pro-hero").
		style("padding", "64px 16px").
		style("text-align", "center")
	if d.BgImage != "" {
		hero.styles(backgroundStyles(d, DefaultProfessionalBg))
	} else {
		accent := pickColor(d.AccentColor, DefaultAccentColor)
		hero.style("background-image", "linear-gradient(135deg, "+accent+", "+pickColor(d.BgColor, "#0f172a")+")")
	}

	heroName := pickColor(d.NameColor, DefaultNameColor)
	hero.add(
		avatarNode(d, 128),
		el("h1", "profile-name").style("color", heroName).text(displayName(d)),
	)
	if d.JobTitle != "" {
		hero.add(el("p", "profile-job-title").style("color", descColorLight).text(d.JobTitle))
	}
	hero.add(statCards("stats-grid", []stat{
		{"Profile views", sum.TotalViews},
		{"Highlights", len(d.FeaturedItems)},
		{"Skills", len(d.Skills)},
		{"Experience", len(d.Experience)},
	}, th))

	body := el("div", "pro-body").
		style("max-width", "760px").
		style("margin", "0 auto").
		style("padding", "32px 16px").
		add(contactCard(d.Contact, th), coreSections(d, th))

	root := el("div", "profile-page", "viewmode-showcase").
		style("min-height", "100vh").
		style("background-color", pickColor(d.BgColor, DefaultProfessionalBg))
	if d.FontFamily != "" {
		root.style("font-family", d.FontFamily)
	}
	return root.add(hero, body, audioControl(d))
}

// minimalProPage: one centered card with two action buttons and the
// per-provider contact link list; core sections follow as a secondary
// scroll area.
func minimalProPage(p profile.Profile, sum analytics.Summary) *Node {
	d := p.Data
	th := professionalTheme(d)
	nameColor := pickColor(d.NameColor, th.NameColor)
	buttonColor := pickColor(d.ButtonColor, d.AccentColor, DefaultButtonColor)

	card := el("div", "pro-card").
		style("max-width", "420px").
		style("margin", "64px auto").
		style("padding", "32px").
		style("border-radius", "16px").
		style("text-align", "center").
		style("background-color", th.BlockColor).
		add(avatarNode(d, 96), el("h1", "profile-name").style("color", nameColor).text(displayName(d)))
	if d.JobTitle != "" {
		card.add(el("p", "profile-job-title").style("color", th.DescColor).text(d.JobTitle))
	}

	actionButton := func(label, href string) *Node {
		return el("a", "action-button").
			attr("href", href).
			style("background-color", buttonColor).
			style("color", "#ffffff").
			style("padding", "10px 24px").
			style("border-radius", "8px").
			style("text-decoration", "none").
			text(label)
	}
	contactHref := "#contact"
	if d.Contact.Email != "" {
		contactHref = "mailto:" + d.Contact.Email
	}
	shareHref := "#share"
	if site := d.SocialLinks["website"]; site != "" {
		shareHref = site
	}
	card.add(el("div", "action-row").
		style("display", "flex").
		style("gap", "12px").
		style("justify-content", "center").
		style("margin", "16px 0").
		add(actionButton("Contact", contactHref), actionButton("Connect", shareHref)))

	if len(d.Contact.Links) > 0 {
		list := el("div", "contact-links").
			style("display", "flex").
			style("flex-direction", "column").
			style("gap", "10px")
		for _, link := range d.Contact.Links {
			if link.URL == "" {
				continue
			}
			list.add(el("a", "contact-link", "contact-link-"+link.Service).
				attr("href", link.URL).
				attr("target", "_blank").
				attr("rel", "noopener noreferrer").
				style("color", nameColor).
				style("border", "1px solid "+th.DescColor).
				style("border-radius", "8px").
				style("padding", "10px").
				style("text-decoration", "none").
				text(link.Service))
		}
		card.add(list)
	}

	secondary := el("div", "secondary-scroll").
		style("max-width", "640px").
		style("margin", "0 auto").
		style("padding", "0 16px 48px").
		add(coreSections(d, th))

	return pageRoot("viewmode-minimal", d, DefaultProfessionalBg).
		add(card, secondary, audioControl(d))
}
