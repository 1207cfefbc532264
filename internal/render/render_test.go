package render

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
)

func boolPtr(b bool) *bool { return &b }

func testProfile(kind profile.Kind, data profile.Data) profile.Profile {
	data.Username = "ada"
	return profile.Profile{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Username: "ada",
		Kind:     kind,
		Data:     data,
	}
}

func TestPagePrivateProfileHidesEverything(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada Lovelace",
		About:       "secret biography",
		IsPublic:    boolPtr(false),
		Sections: []profile.Section{
			{ID: "s1", Type: profile.SectionText, Content: "hidden section"},
		},
	})

	result := Page(p, nil, analytics.Summary{}, false)

	assert.Equal(t, StatePrivate, result.State)
	html := result.Tree.HTML()
	assert.Contains(t, html, "This profile is private.")
	assert.Contains(t, html, "@ada")
	assert.NotContains(t, html, "secret biography")
	assert.NotContains(t, html, "hidden section")
	assert.NotContains(t, html, "Ada Lovelace")
}

func TestPageOwnerSeesPrivateProfile(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada Lovelace",
		IsPublic:    boolPtr(false),
	})

	result := Page(p, nil, analytics.Summary{}, true)

	assert.Equal(t, StateOK, result.State)
	assert.Contains(t, result.Tree.HTML(), "Ada Lovelace")
}

func TestPageMissingFlagMeansPublic(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{DisplayName: "Ada"})

	result := Page(p, nil, analytics.Summary{}, false)

	assert.Equal(t, StateOK, result.State)
}

func TestPageKindDispatch(t *testing.T) {
	cases := []struct {
		kind      profile.Kind
		rootClass string
	}{
		{profile.KindPersonal, "layout-default"},
		{profile.KindProfessional, "viewmode-standard"},
		{profile.KindVtree, "vtree-page"},
		{profile.KindResume, "resume-wrapper"},
	}

	for _, tc := range cases {
		result := Page(testProfile(tc.kind, profile.Data{DisplayName: "Ada"}), nil, analytics.Summary{}, false)
		require.NotNil(t, result.Tree, string(tc.kind))
		assert.True(t, hasClass(result.Tree, tc.rootClass),
			"kind %s should render %s, got class %q", tc.kind, tc.rootClass, result.Tree.Attrs["class"])
	}
}

func TestPageAppliesThemeWithoutMutatingCaller(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{
		DisplayName: "Ada",
		BgColor:     "#111111",
	})
	th := &theme.Theme{
		ID:          "midnight",
		Name:        "Midnight",
		ProfileType: profile.KindPersonal,
		Tokens:      map[string]any{theme.TokenBgColor: "#222222"},
	}

	result := Page(p, th, analytics.Summary{}, false)

	assert.Contains(t, result.Tree.Style["background-color"], "#222222")
	// The caller's snapshot is untouched: Page works on a value copy.
	assert.Equal(t, "#111111", p.Data.BgColor)
}

func TestPageThemeTokensBeatStoredValues(t *testing.T) {
	p := testProfile(profile.KindPersonal, profile.Data{NameColor: "#aaaaaa"})
	th := &theme.Theme{
		ID: "x", Name: "X", ProfileType: profile.KindPersonal,
		Tokens: map[string]any{theme.TokenNameColor: "#123456"},
	}

	result := Page(p, th, analytics.Summary{}, false)

	name := findByClass(result.Tree, "profile-name")
	require.NotNil(t, name)
	assert.Equal(t, "#123456", name.Style["color"])
}

func TestDocumentEscapesTitle(t *testing.T) {
	doc := Document(`<script>alert("x")</script>`, el("div"))
	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "&lt;script&gt;")
}
