package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/internal/domain/profile"
)

func TestPersonalUnknownLayoutFallsBackToDefault(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada",
		Layout:      "brutalist",
	})

	tree := personalPage(p)

	assert.True(t, hasClass(tree, "layout-default"))
}

func TestPersonalEmptyProfileStillRenders(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{})

	tree := personalPage(p)

	require.NotNil(t, tree)
	// Username is the display-name fallback.
	assert.Contains(t, collectText(tree), "ada")
	assert.Equal(t, DefaultPersonalBg, tree.Style["background-color"])
}

func TestCanvasBeatsNamedLayout(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		Layout: profile.LayoutLinktree,
		VereElements: []profile.VereElement{
			{ID: "e1", Type: "text", X: 10, Y: 20, W: 100, H: 40, Text: "floating"},
		},
	})

	tree := personalPage(p)

	assert.True(t, hasClass(tree, "layout-canvas"))
	assert.False(t, hasClass(tree, "layout-linktree"))

	element := findByClass(tree, "canvas-text")
	require.NotNil(t, element)
	assert.Equal(t, "absolute", element.Style["position"])
	assert.Equal(t, "10px", element.Style["left"])
	assert.Equal(t, "20px", element.Style["top"])
}

func TestCanvasSkipsUnknownElementTypes(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		VereElements: []profile.VereElement{
			{ID: "e1", Type: "video", Text: "nope"},
			{ID: "e2", Type: "shape", Color: "#ff0000"},
			{ID: "e3", Type: "image"}, // image without a URL is dropped too
		},
	})

	tree := personalPage(p)

	assert.Nil(t, findByClass(tree, "canvas-text"))
	assert.NotNil(t, findByClass(tree, "canvas-shape"))
	assert.Nil(t, findByClass(tree, "canvas-image"))
}

func TestLinktreeBuildsLinkStackInOrder(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		Layout: profile.LayoutLinktree,
		Sections: []profile.Section{
			{ID: "s2", Type: profile.SectionLink, Order: 2, Title: "Blog", URL: "https://blog.test"},
			{ID: "s1", Type: profile.SectionLink, Order: 1, Title: "Shop", URL: "https://shop.test"},
			{ID: "s3", Type: profile.SectionText, Order: 0, Content: "about me"},
		},
		Contact: profile.Contact{
			Links: []profile.ContactLink{{Service: "github", URL: "https://github.com/ada"}},
		},
	})

	tree := personalPage(p)
	buttons := findAllByClass(tree, "link-button")

	require.Len(t, buttons, 3)
	assert.Equal(t, "https://shop.test", buttons[0].Attrs["href"])
	assert.Equal(t, "https://blog.test", buttons[1].Attrs["href"])
	assert.Equal(t, "https://github.com/ada", buttons[2].Attrs["href"])

	// Non-link sections still render, below the stack.
	assert.Contains(t, collectText(tree), "about me")
}

func TestGlowAppliedPerLayout(t *testing.T) {
	glowLayouts := []string{profile.LayoutDefault, profile.LayoutLinktree, profile.LayoutGuns, profile.LayoutCustom}
	flatLayouts := []string{profile.LayoutLinkedin, profile.LayoutMinimal}

	for _, layout := range glowLayouts {
		p := testProfile(profile.KindPersonal, profile.Data{DisplayName: "Ada", Layout: layout})
		name := findByClass(personalPage(p), "profile-name")
		require.NotNil(t, name, layout)
		assert.NotEmpty(t, name.Style["text-shadow"], "layout %s should glow", layout)
	}
	for _, layout := range flatLayouts {
		p := testProfile(profile.KindPersonal, profile.Data{DisplayName: "Ada", Layout: layout})
		name := findByClass(personalPage(p), "profile-name")
		require.NotNil(t, name, layout)
		assert.Empty(t, name.Style["text-shadow"], "layout %s should stay flat", layout)
	}
}

func TestCustomLayoutSettings(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada",
		Avatar:      "https://img.test/a.png",
		Tagline:     "hello",
		Layout:      profile.LayoutCustom,
		LayoutSettings: profile.LayoutSettings{
			Alignment:   "left",
			AvatarSize:  "large",
			MaxWidth:    900,
			ShowTagline: boolPtr(false),
		},
	})

	tree := personalPage(p)
	column := findByClass(tree, "layout-column")
	require.NotNil(t, column)
	assert.Equal(t, "left", column.Style["text-align"])
	assert.Equal(t, "900px", column.Style["max-width"])

	avatar := findByClass(tree, "profile-avatar")
	require.NotNil(t, avatar)
	assert.Equal(t, "128px", avatar.Style["width"])

	assert.Nil(t, findByClass(tree, "profile-tagline"))
}

func TestCustomLayoutTogglesDefaultOn(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada",
		Avatar:      "https://img.test/a.png",
		Tagline:     "hello",
		Layout:      profile.LayoutCustom,
		SocialLinks: map[string]string{"github": "https://github.com/ada"},
	})

	tree := personalPage(p)

	assert.NotNil(t, findByClass(tree, "profile-avatar"))
	assert.NotNil(t, findByClass(tree, "profile-tagline"))
	assert.NotNil(t, findByClass(tree, "social-row"))
}

func TestSocialRowOrderAndFiltering(t *testing.T) {
	row := socialRow(map[string]string{
		"tiktok":  "https://tiktok.com/@ada",
		"github":  "https://github.com/ada",
		"email":   "ada@example.com",
		"myspace": "https://myspace.com/ada", // unknown provider, skipped
		"twitter": "   ",                     // blank, skipped
	}, "#ffffff")

	require.NotNil(t, row)
	links := findAllByClass(row, "social-link")
	require.Len(t, links, 3)
	// Fixed provider order, not map order.
	assert.Equal(t, "https://github.com/ada", links[0].Attrs["href"])
	assert.Equal(t, "https://tiktok.com/@ada", links[1].Attrs["href"])
	assert.Equal(t, "mailto:ada@example.com", links[2].Attrs["href"])
}

func TestSocialRowEmptyReturnsNil(t *testing.T) {
	assert.Nil(t, socialRow(nil, "#ffffff"))
	assert.Nil(t, socialRow(map[string]string{"myspace": "x"}, "#ffffff"))
}

func TestAudioControlOnlyWithURL(t *testing.T) {
	assert.Nil(t, audioControl(profile.Data{}))

	control := audioControl(profile.Data{
		AudioURL:       "https://cdn.test/song.mp3",
		AudioStartTime: 12.5,
		AudioEndTime:   60,
	})
	require.NotNil(t, control)
	require.NotEmpty(t, control.Children)

	audio := control.Children[0]
	require.Equal(t, "audio", audio.Tag)
	assert.Equal(t, "https://cdn.test/song.mp3", audio.Attrs["src"])
	assert.Equal(t, "12.5", audio.Attrs["data-start"])
	assert.Equal(t, "60", audio.Attrs["data-end"])
}
