package memory

import (
	"testing"
	"time"

	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_LabelsDays(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	repo, err := NewScheduleRepository(newDB(t), catalog.Schedules, time.UTC, now)
	require.NoError(t, err)

	days, err := repo.GetByChannelIndex(0)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Today", days[0].Label)
	assert.Equal(t, "Mar 14", days[0].Date)
	assert.Equal(t, "Tomorrow", days[1].Label)
	assert.Equal(t, "Mar 15", days[1].Date)
	assert.Equal(t, "Morning Headlines", days[0].Programs[0].Title)
}

func TestScheduleRepository_Rollover(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	repo, err := NewScheduleRepository(newDB(t), catalog.Schedules, time.UTC, now)
	require.NoError(t, err)

	require.NoError(t, repo.Rollover(now.Add(2*time.Minute)))

	days, err := repo.GetByChannelIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "Mar 15", days[0].Date)
	assert.Equal(t, "Mar 16", days[1].Date)
}

func TestScheduleRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewScheduleRepository(newDB(t), catalog.Schedules, time.UTC, time.Now())
	require.NoError(t, err)

	days, err := repo.GetByChannelIndex(0)
	require.NoError(t, err)
	days[0].Programs[0].Title = "mutated"

	again, err := repo.GetByChannelIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "Morning Headlines", again[0].Programs[0].Title)
}

func TestScheduleRepository_UnknownChannel(t *testing.T) {
	repo, err := NewScheduleRepository(newDB(t), catalog.Schedules, time.UTC, time.Now())
	require.NoError(t, err)

	_, err = repo.GetByChannelIndex(4)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
