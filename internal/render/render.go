package render

import (
	"github.com/vere-app/vere/internal/domain/analytics"
	"github.com/vere-app/vere/internal/domain/profile"
	"github.com/vere-app/vere/internal/domain/theme"
)

// State is the render outcome the page layer branches on.
type State string

const (
	StateOK      State = "ok"
	StatePrivate State = "private"
)

// Result is what Page hands back: the tree to display and the outcome.
type Result struct {
	Tree  *Node
	State State
}

// Page is the sole rendering entry point. The profile is a snapshot
// taken by value; applying theme tokens here never leaks back to the
// caller. A private profile short-circuits before any content work and
// yields a tree with no section, experience, education or contact data.
func Page(p profile.Profile, t *theme.Theme, sum analytics.Summary, viewerIsOwner bool) Result {
	if !p.IsPublic() && !viewerIsOwner {
		return Result{Tree: privatePage(p.Username), State: StatePrivate}
	}

	if t != nil {
		theme.ApplyUpdates(&p.Data, theme.BuildUpdates(t))
	}

	var tree *Node
	switch p.Kind {
	case profile.KindProfessional:
		tree = professionalPage(p, sum)
	case profile.KindVtree:
		tree = vtreePage(p)
	case profile.KindResume:
		tree = resumePage(p)
	default:
		tree = personalPage(p)
	}
	return Result{Tree: tree, State: StateOK}
}

func privatePage(username string) *Node {
	return el("div", "profile-page", "profile-private").
		style("background-color", DefaultPersonalBg).
		style("min-height", "100vh").
		style("display", "flex").
		style("align-items", "center").
		style("justify-content", "center").
		add(el("div", "private-notice").
			style("color", descColorLight).
			style("text-align", "center").
			add(
				el("h1").text("@"+username),
				el("p").text("This profile is private."),
			))
}
