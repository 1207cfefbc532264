package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyLog(t *testing.T) {
	sum := Summarize(nil, time.Now())

	assert.Equal(t, 0, sum.TotalViews)
	assert.Equal(t, 0, sum.UniqueViewers)
	assert.Equal(t, 0, sum.TodayViews)
	assert.Equal(t, 0, sum.Last7DaysViews)
	assert.Equal(t, 0, sum.Last30DaysViews)
	assert.Empty(t, sum.ViewsByDate)
}

func TestSummarizeCollapsesAnonymousViewers(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	events := []ViewEvent{
		{ProfileID: "p1", ViewerUsername: "", Timestamp: now},
		{ProfileID: "p1", ViewerUsername: "", Timestamp: now.Add(-time.Hour)},
		{ProfileID: "p1", ViewerUsername: "bob", Timestamp: now.Add(-2 * time.Hour)},
	}

	sum := Summarize(events, now)

	assert.Equal(t, 3, sum.TotalViews)
	// Two anonymous views are one viewer.
	assert.Equal(t, 2, sum.UniqueViewers)
	assert.Equal(t, 3, sum.TodayViews)
}

func TestSummarizeWindows(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	events := []ViewEvent{
		{ProfileID: "p1", ViewerUsername: "a", Timestamp: now},
		{ProfileID: "p1", ViewerUsername: "b", Timestamp: now.AddDate(0, 0, -3)},
		{ProfileID: "p1", ViewerUsername: "c", Timestamp: now.AddDate(0, 0, -10)},
		{ProfileID: "p1", ViewerUsername: "d", Timestamp: now.AddDate(0, 0, -40)},
	}

	sum := Summarize(events, now)

	assert.Equal(t, 4, sum.TotalViews)
	assert.Equal(t, 1, sum.TodayViews)
	assert.Equal(t, 2, sum.Last7DaysViews)
	assert.Equal(t, 3, sum.Last30DaysViews)
	assert.Equal(t, 1, sum.ViewsByDate["2026-08-31"])
	assert.Equal(t, 1, sum.ViewsByDate["2026-08-28"])
}

func TestSummarizeBucketsDatesInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// Late evening local time is already the next day in UTC.
	local := time.Date(2026, 8, 31, 2, 0, 0, 0, loc)

	sum := Summarize([]ViewEvent{{ProfileID: "p1", Timestamp: local}}, local)

	assert.Equal(t, 1, sum.ViewsByDate["2026-08-30"])
}

func TestVheart(t *testing.T) {
	assert.Equal(t, 0, Vheart(0, 0))
	assert.Equal(t, 12, Vheart(7, 5))
}
