package render

import (
	"strings"

	"github.com/vere-app/vere/internal/domain/profile"
)

// The blocks below form the common section block shared by all three
// professional view modes (and partly reused by the personal linkedin
// layout). It is built once here; the shells only differ in chrome.

func headedBlock(title string, th SectionTheme) *Node {
	return el("div", "core-block").
		style("background-color", th.BlockColor).
		style("border-radius", "12px").
		style("padding", "20px").
		style("margin-bottom", "16px").
		add(el("h2", "core-block-title").style("color", th.NameColor).text(title))
}

// coreSections renders highlights, activity, about, experience,
// education, skills and the user-authored section list, in that order.
func coreSections(d profile.Data, th SectionTheme) *Node {
	wrap := el("div", "core-sections")
	wrap.add(
		highlightsBlock(d.FeaturedItems, th),
		activityBlock(d.RecentActivity, th),
	)
	if d.About != "" {
		wrap.add(headedBlock("About", th).add(aboutNode(d, th)))
	}
	wrap.add(
		experienceBlock(d.Experience, th),
		educationBlock(d.Education, th),
		skillsBlock(d.Skills, th),
		Sections(d.Sections, th),
	)
	return wrap
}

func highlightsBlock(items []profile.FeaturedItem, th SectionTheme) *Node {
	block := headedBlock("Highlights", th)
	if len(items) == 0 {
		return block.add(el("p", "empty-state").
			style("color", th.DescColor).
			text("No highlights yet."))
	}

	grid := el("div", "highlight-grid").
		style("display", "grid").
		style("grid-template-columns", "repeat(auto-fill, minmax(200px, 1fr))").
		style("gap", "12px")
	for _, item := range items {
		card := el("div", "highlight-card").
			attr("data-item-id", item.ID).
			style("border-radius", "10px").
			style("padding", "12px")
		if item.ImageURL != "" {
			card.add(el("img", "highlight-image").attr("src", item.ImageURL).attr("alt", item.Title))
		}
		card.add(el("h3", "highlight-title").style("color", th.NameColor).text(item.Title))
		if item.Description != "" {
			card.add(el("p", "highlight-desc").style("color", th.DescColor).text(item.Description))
		}
		if item.URL != "" {
			card.add(el("a", "highlight-link").
				attr("href", item.URL).
				attr("target", "_blank").
				attr("rel", "noopener noreferrer").
				text("View"))
		}
		grid.add(card)
	}
	return block.add(grid)
}

func activityBlock(items []profile.Activity, th SectionTheme) *Node {
	if len(items) == 0 {
		return nil
	}
	block := headedBlock("Activity", th)
	list := el("ul", "activity-list").style("color", th.DescColor)
	for _, item := range items {
		entry := el("li", "activity-item").text(item.Text)
		if item.Date != "" {
			entry.add(el("span", "activity-date").text(" · " + item.Date))
		}
		list.add(entry)
	}
	return block.add(list)
}

func experienceBlock(items []profile.Experience, th SectionTheme) *Node {
	if len(items) == 0 {
		return nil
	}
	block := headedBlock("Experience", th)
	for _, item := range items {
		entry := el("div", "experience-item").attr("data-item-id", item.ID)
		entry.add(el("h3", "experience-title").style("color", th.NameColor).text(item.Title))

		meta := item.Company
		if item.Location != "" {
			meta += " · " + item.Location
		}
		if dates := dateRange(item.StartDate, item.EndDate, item.Current); dates != "" {
			meta += " · " + dates
		}
		entry.add(el("p", "experience-meta").style("color", th.DescColor).text(meta))

		if item.Description != "" {
			entry.add(el("p", "experience-desc").style("color", th.DescColor).text(item.Description))
		}
		block.add(entry)
	}
	return block
}

func educationBlock(items []profile.Education, th SectionTheme) *Node {
	if len(items) == 0 {
		return nil
	}
	block := headedBlock("Education", th)
	for _, item := range items {
		entry := el("div", "education-item").attr("data-item-id", item.ID)
		entry.add(el("h3", "education-school").style("color", th.NameColor).text(item.School))

		parts := make([]string, 0, 3)
		if item.Degree != "" {
			parts = append(parts, item.Degree)
		}
		if item.Field != "" {
			parts = append(parts, item.Field)
		}
		if years := dateRange(item.StartYear, item.EndYear, false); years != "" {
			parts = append(parts, years)
		}
		if len(parts) > 0 {
			entry.add(el("p", "education-meta").style("color", th.DescColor).text(strings.Join(parts, " · ")))
		}
		if item.Description != "" {
			entry.add(el("p", "education-desc").style("color", th.DescColor).text(item.Description))
		}
		block.add(entry)
	}
	return block
}

func skillsBlock(skills []string, th SectionTheme) *Node {
	rendered := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.TrimSpace(skill) != "" {
			rendered = append(rendered, skill)
		}
	}
	if len(rendered) == 0 {
		return nil
	}
	block := headedBlock("Skills", th)
	chips := el("div", "skill-chips").
		style("display", "flex").
		style("flex-wrap", "wrap").
		style("gap", "8px")
	for _, skill := range rendered {
		chips.add(el("span", "skill-chip").
			style("color", th.NameColor).
			style("border", "1px solid "+th.DescColor).
			style("border-radius", "999px").
			style("padding", "4px 12px").
			text(skill))
	}
	return block.add(chips)
}

func dateRange(start, end string, current bool) string {
	switch {
	case start == "" && end == "":
		return ""
	case current:
		return start + " – Present"
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}
