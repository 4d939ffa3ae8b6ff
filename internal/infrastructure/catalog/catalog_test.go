package catalog

import (
	"testing"
	"time"

	"github.com/mahaatv/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannels_AreValidAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Channels() {
		require.NoError(t, c.Validate())
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestChannels_OnlyUSAIsHosted(t *testing.T) {
	for _, c := range Channels() {
		assert.Equal(t, c.ID == "mahaa-usa", c.IsHostedPlaylist(), c.ID)
	}
}

func TestChannels_FreshValuesPerCall(t *testing.T) {
	first := Channels()
	first[0].Name = "changed"

	assert.Equal(t, "Mahaa News", Channels()[0].Name)
}

func TestChannelImages_CoverCatalog(t *testing.T) {
	for _, c := range Channels() {
		assert.NotEmpty(t, ChannelImages[c.ID], c.ID)
	}
}

func TestSchedules_AlignedWithCatalog(t *testing.T) {
	schedules := Schedules(time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC))
	require.Len(t, schedules, len(Channels()))

	for _, days := range schedules {
		require.NotEmpty(t, days)
		assert.Equal(t, "Today", days[0].Label)
		assert.Equal(t, "Jan 31", days[0].Date)
		assert.Equal(t, "Feb 1", days[1].Date)
		assertSortedTimes(t, days)
	}
}

func TestDayLabel_LaterDaysUseWeekday(t *testing.T) {
	saturday := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Saturday", dayLabel(2, saturday))
}

func assertSortedTimes(t *testing.T, days []domain.ScheduleDay) {
	t.Helper()
	for _, day := range days {
		for i := 1; i < len(day.Programs); i++ {
			assert.LessOrEqual(t, day.Programs[i-1].Time, day.Programs[i].Time, day.Label)
		}
	}
}
