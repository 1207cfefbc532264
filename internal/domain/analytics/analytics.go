package analytics

import (
	"context"
	"time"
)

// AnonymousViewer is the bucket all unauthenticated viewers collapse to
// when counting unique visitors.
const AnonymousViewer = "anonymous"

// ViewEvent is one row of the append-only view log.
type ViewEvent struct {
	ProfileID      string    `json:"profile_id"`
	ViewerUsername string    `json:"viewer_username"`
	Timestamp      time.Time `json:"timestamp"`
}

// Summary is derived on demand and never stored.
type Summary struct {
	TotalViews      int            `json:"total_views"`
	UniqueViewers   int            `json:"unique_viewers"`
	TodayViews      int            `json:"today_views"`
	Last7DaysViews  int            `json:"last_7_days_views"`
	Last30DaysViews int            `json:"last_30_days_views"`
	ViewsByDate     map[string]int `json:"views_by_date"`
}

// Summarize folds a view-event log into aggregate counters. An empty log
// yields an all-zero summary; there are no error cases.
func Summarize(events []ViewEvent, now time.Time) Summary {
	summary := Summary{ViewsByDate: make(map[string]int)}

	today := now.UTC().Format("2006-01-02")
	cutoff7 := now.AddDate(0, 0, -7)
	cutoff30 := now.AddDate(0, 0, -30)
	viewers := make(map[string]struct{})

	for _, ev := range events {
		summary.TotalViews++

		viewer := ev.ViewerUsername
		if viewer == "" {
			viewer = AnonymousViewer
		}
		viewers[viewer] = struct{}{}

		date := ev.Timestamp.UTC().Format("2006-01-02")
		summary.ViewsByDate[date]++
		if date == today {
			summary.TodayViews++
		}
		if ev.Timestamp.After(cutoff7) {
			summary.Last7DaysViews++
		}
		if ev.Timestamp.After(cutoff30) {
			summary.Last30DaysViews++
		}
	}

	summary.UniqueViewers = len(viewers)
	return summary
}

// Vheart is the composite popularity counter: unique viewers plus
// explicit saves.
func Vheart(uniqueViewers, saves int) int {
	return uniqueViewers + saves
}

type Repository interface {
	Append(ctx context.Context, ev ViewEvent) error
	ListByProfile(ctx context.Context, profileID string) ([]ViewEvent, error)
	AddSave(ctx context.Context, profileID string) error
	CountSaves(ctx context.Context, profileID string) (int, error)
}
