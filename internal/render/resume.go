package render

import (
	"strings"

	"github.com/vere-app/vere/internal/domain/profile"
)

// resumePage is the printable CV template. Deliberately plain: white
// page, dark text, no chrome shared with the profile renderers beyond
// the color helpers.
func resumePage(p profile.Profile) *Node {
	d := p.Data

	textColor := pickColor(d.TextColor, "#1f2937")
	headingColor := pickColor(d.HeadingColor, "#111827")
	accent := pickColor(d.AccentColor, "#374151")

	page := el("div", "resume-page").
		style("background-color", pickColor(d.BgColor, DefaultResumeBg)).
		style("color", textColor).
		style("max-width", "800px").
		style("margin", "0 auto").
		style("padding", "48px")
	if d.FontFamily != "" {
		page.style("font-family", d.FontFamily)
	}

	header := el("div", "resume-header").
		style("border-bottom", "2px solid "+accent).
		style("padding-bottom", "16px").
		add(el("h1", "resume-name").style("color", headingColor).text(displayName(d)))
	if d.JobTitle != "" {
		header.add(el("p", "resume-title").text(d.JobTitle))
	}
	if line := contactLine(d.Contact); line != "" {
		header.add(el("p", "resume-contact").text(line))
	}
	page.add(header)

	section := func(title string) *Node {
		block := el("div", "resume-section").style("margin-top", "24px")
		block.add(el("h2", "resume-heading").
			style("color", headingColor).
			style("border-bottom", "1px solid "+accent).
			text(title))
		page.add(block)
		return block
	}

	if d.About != "" {
		section("Summary").add(el("p").text(d.About))
	}

	if len(d.Experience) > 0 {
		block := section("Experience")
		for _, item := range d.Experience {
			entry := el("div", "resume-entry").style("margin-top", "12px")
			heading := item.Title
			if item.Company != "" {
				heading += ", " + item.Company
			}
			entry.add(el("h3").style("color", headingColor).text(heading))
			if dates := dateRange(item.StartDate, item.EndDate, item.Current); dates != "" {
				entry.add(el("p", "resume-dates").text(dates))
			}
			if item.Description != "" {
				entry.add(el("p").text(item.Description))
			}
			block.add(entry)
		}
	}

	if len(d.Education) > 0 {
		block := section("Education")
		for _, item := range d.Education {
			entry := el("div", "resume-entry").style("margin-top", "12px")
			heading := item.School
			if item.Degree != "" {
				heading += " — " + item.Degree
			}
			entry.add(el("h3").style("color", headingColor).text(heading))
			if years := dateRange(item.StartYear, item.EndYear, false); years != "" {
				entry.add(el("p", "resume-dates").text(years))
			}
			block.add(entry)
		}
	}

	if len(d.Skills) > 0 {
		section("Skills").add(el("p", "resume-skills").text(strings.Join(d.Skills, " · ")))
	}

	return el("div", "profile-page", "resume-wrapper").
		style("background-color", "#e5e7eb").
		style("min-height", "100vh").
		style("padding", "24px 0").
		add(page)
}

func contactLine(c profile.Contact) string {
	parts := make([]string, 0, 3)
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.Address != "" {
		parts = append(parts, c.Address)
	}
	return strings.Join(parts, " · ")
}
