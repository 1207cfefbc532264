package render

import (
	"sort"
	"strings"

	"github.com/vere-app/vere/internal/domain/profile"
)

// SectionTheme carries the three colors section rendering needs.
type SectionTheme struct {
	NameColor  string
	DescColor  string
	BlockColor string
}

// Sections renders the ordered user-authored section list. The input is
// never mutated: sorting happens on a shallow copy, with a stable sort so
// equal orders keep their original array position. Returns nil when there
// is nothing to render; callers treat that as "no extra content".
func Sections(sections []profile.Section, th SectionTheme) *Node {
	if len(sections) == 0 {
		return nil
	}

	sorted := make([]profile.Section, len(sections))
	copy(sorted, sections)
	stableSortByOrder(sorted)

	container := el("div", "profile-sections")
	for _, s := range sorted {
		container.add(renderSection(s, th))
	}
	if len(container.Children) == 0 {
		return nil
	}
	return container
}

// stableSortByOrder sorts in place. Stability matters: order values need
// not be unique, and ties must keep their original array position.
func stableSortByOrder(sections []profile.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

func renderSection(s profile.Section, th SectionTheme) *Node {
	switch s.Type {
	case profile.SectionText:
		return textSection(s, th)
	case profile.SectionBullets:
		return bulletsSection(s, th)
	case profile.SectionContact:
		return contactSection(s, th)
	case profile.SectionImageText:
		return imageTextSection(s, th)
	case profile.SectionLink:
		return linkSection(s, th)
	default:
		// Section lists are user-authored and may carry kinds this
		// build does not know. Skip the entry, keep the page.
		return nil
	}
}

func sectionBlock(s profile.Section, th SectionTheme, kindClass string) *Node {
	block := el("div", "section", kindClass).
		attr("data-section-id", s.ID).
		style("background-color", th.BlockColor).
		style("border-radius", "12px").
		style("padding", "16px")
	if s.Title != "" {
		block.add(el("h3", "section-title").
			style("color", th.NameColor).
			text(s.Title))
	}
	return block
}

func textSection(s profile.Section, th SectionTheme) *Node {
	block := sectionBlock(s, th, "section-text")
	if s.Content != "" {
		block.add(el("p", "section-content").
			style("color", th.DescColor).
			text(s.Content))
	}
	return block
}

func bulletsSection(s profile.Section, th SectionTheme) *Node {
	block := sectionBlock(s, th, "section-bullets")

	items := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		if strings.TrimSpace(item) != "" {
			items = append(items, item)
		}
	}
	// An all-empty list keeps the heading (if any) but emits no list
	// markup at all.
	if len(items) > 0 {
		list := el("ul", "section-list").style("color", th.DescColor)
		for _, item := range items {
			list.add(el("li").text(item))
		}
		block.add(list)
	}
	return block
}

func contactSection(s profile.Section, th SectionTheme) *Node {
	block := sectionBlock(s, th, "section-contact")

	row := func(class, label string) *Node {
		return el("div", "contact-row", class).
			style("color", th.DescColor).
			text(label)
	}

	if s.Address != "" {
		block.add(row("contact-address", s.Address))
	}
	if s.Phone != "" {
		block.add(row("contact-phone", "").add(
			el("a").attr("href", "tel:"+s.Phone).text(s.Phone),
		))
	}
	if s.Email != "" {
		block.add(row("contact-email", "").add(
			el("a").attr("href", "mailto:"+s.Email).text(s.Email),
		))
	}
	if s.Website != "" {
		block.add(row("contact-website", "").add(
			el("a").attr("href", s.Website).attr("target", "_blank").attr("rel", "noopener noreferrer").text(s.Website),
		))
	}
	return block
}

func imageTextSection(s profile.Section, th SectionTheme) *Node {
	block := sectionBlock(s, th, "section-image-text")

	if s.ImageURL == "" {
		// No image: content spans the full width.
		if s.Content != "" {
			block.add(el("p", "section-content").
				style("color", th.DescColor).
				style("width", "100%").
				text(s.Content))
		}
		return block
	}

	img := el("img", "section-image").
		attr("src", s.ImageURL).
		attr("alt", s.Title)
	if s.Content == "" {
		block.add(img)
		return block
	}

	split := el("div", "section-split").style("display", "flex").style("gap", "16px")
	split.add(img)
	split.add(el("p", "section-content").
		style("color", th.DescColor).
		text(s.Content))
	block.add(split)
	return block
}

func linkSection(s profile.Section, th SectionTheme) *Node {
	block := sectionBlock(s, th, "section-link")
	if s.URL == "" {
		return block
	}
	label := s.Title
	if label == "" {
		label = s.URL
	}
	block.add(el("a", "section-link-anchor").
		attr("href", s.URL).
		attr("target", "_blank").
		attr("rel", "noopener noreferrer").
		style("color", th.NameColor).
		text(label))
	return block
}
