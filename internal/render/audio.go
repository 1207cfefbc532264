package render

import (
	"strconv"

	"github.com/vere-app/vere/internal/domain/profile"
)

// audioControl renders the fixed-position mute toggle for profiles with
// an audio clip. The loop window rides along as data attributes; 0/0
// means the full track. When no clip URL resolved, the page simply
// renders without the control.
func audioControl(d profile.Data) *Node {
	if d.AudioURL == "" {
		return nil
	}

	wrap := el("div", "audio-control").
		style("position", "fixed").
		style("bottom", "16px").
		style("right", "16px").
		style("z-index", "50")

	audio := el("audio").
		attr("src", d.AudioURL).
		attr("preload", "auto").
		attr("data-start", strconv.FormatFloat(d.AudioStartTime, 'f', -1, 64)).
		attr("data-end", strconv.FormatFloat(d.AudioEndTime, 'f', -1, 64))

	toggle := el("button", "audio-toggle").
		attr("type", "button").
		attr("aria-label", "toggle audio").
		text("Mute")

	return wrap.add(audio, toggle)
}
