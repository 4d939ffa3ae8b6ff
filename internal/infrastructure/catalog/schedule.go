package catalog

import (
	"time"

	"github.com/mahaatv/backend/internal/domain"
)

// DateLayout renders day tabs as short month and day, e.g. "Jan 2"
const DateLayout = "Jan 2"

// dayPrograms is one day of programs for one channel, without labels
type dayPrograms []domain.ProgramEntry

// programs is index-aligned with Channels(): one entry per channel,
// today first then tomorrow.
var programs = [][]dayPrograms{
	// Mahaa News
	{
		{
			{Time: "06:00", Title: "Morning Headlines", Genre: "Breaking News", Duration: "60 min", Rating: 4.8},
			{Time: "07:00", Title: "News Breakfast", Genre: "News", Duration: "90 min", Rating: 4.5},
			{Time: "08:30", Title: "Political Roundtable", Genre: "Politics", Duration: "60 min", Rating: 4.3},
			{Time: "10:00", Title: "Live Press Conference", Genre: "Live Event", Duration: "60 min", Rating: 4.6, IsLive: true},
			{Time: "12:00", Title: "Noon News", Genre: "News", Duration: "60 min", Rating: 4.7},
			{Time: "18:00", Title: "Evening Prime Time", Genre: "News", Duration: "120 min", Rating: 4.9},
			{Time: "22:00", Title: "Night Bulletin", Genre: "News", Duration: "60 min", Rating: 4.5},
		},
		{
			{Time: "06:00", Title: "Weekend Special", Genre: "Special", Duration: "120 min", Rating: 4.6},
			{Time: "08:00", Title: "Week Review", Genre: "Analysis", Duration: "90 min", Rating: 4.4},
		},
	},
	// Mahaa Bhakti
	{
		{
			{Time: "05:00", Title: "Suprabhatam", Genre: "Prayer", Duration: "60 min", Rating: 4.9, IsLive: true},
			{Time: "06:00", Title: "Bhakti Geethalu", Genre: "Devotional Music", Duration: "120 min", Rating: 4.7},
			{Time: "08:00", Title: "Pravachanam", Genre: "Prayer", Duration: "60 min", Rating: 4.6},
			{Time: "18:00", Title: "Sandhya Aarti", Genre: "Prayer", Duration: "60 min", Rating: 4.8, IsLive: true},
			{Time: "20:00", Title: "Annamayya Keerthanalu", Genre: "Devotional Music", Duration: "90 min", Rating: 4.5},
		},
		{
			{Time: "05:00", Title: "Suprabhatam", Genre: "Prayer", Duration: "60 min", Rating: 4.9},
			{Time: "07:00", Title: "Temple Darshan", Genre: "Prayer", Duration: "120 min", Rating: 4.6},
		},
	},
	// Mahaa Max
	{
		{
			{Time: "09:00", Title: "Morning Movie", Genre: "Movie", Duration: "150 min", Rating: 4.2},
			{Time: "12:00", Title: "Comedy Express", Genre: "Comedy", Duration: "60 min", Rating: 4.4},
			{Time: "13:00", Title: "Top 20 Songs", Genre: "Music", Duration: "60 min", Rating: 4.3},
			{Time: "15:00", Title: "Matinee Movie", Genre: "Movie", Duration: "150 min", Rating: 4.1},
			{Time: "21:00", Title: "Blockbuster Night", Genre: "Movie", Duration: "180 min", Rating: 4.7},
		},
		{
			{Time: "10:00", Title: "Family Movie", Genre: "Movie", Duration: "150 min", Rating: 4.3},
			{Time: "14:00", Title: "Comedy Stars", Genre: "Comedy", Duration: "60 min", Rating: 4.5},
		},
	},
	// Mahaa USA
	{
		{
			{Time: "06:00", Title: "NATS 8th Conference", Genre: "Conference", Duration: "120 min", Rating: 4.5},
			{Time: "09:00", Title: "TANA 24th Conference", Genre: "Conference", Duration: "165 min", Rating: 4.6},
			{Time: "14:00", Title: "KTR in Dallas", Genre: "Politics", Duration: "135 min", Rating: 4.3},
			{Time: "19:00", Title: "Miss Telugu USA 2025", Genre: "Live Event", Duration: "150 min", Rating: 4.4, IsLive: true},
		},
		{
			{Time: "11:45", Title: "TANA Youth Conference 2025", Genre: "Conference", Duration: "90 min", Rating: 4.2},
			{Time: "16:30", Title: "Mahaa ICON", Genre: "Live Event", Duration: "200 min", Rating: 4.8},
		},
	},
}

// Schedules labels the program data relative to now. The first day of every
// channel is "Today", the second "Tomorrow"; later days are named by weekday.
func Schedules(now time.Time) [][]domain.ScheduleDay {
	out := make([][]domain.ScheduleDay, len(programs))
	for ch, days := range programs {
		out[ch] = make([]domain.ScheduleDay, len(days))
		for d, list := range days {
			date := now.AddDate(0, 0, d)
			entries := make([]domain.ProgramEntry, len(list))
			copy(entries, list)
			out[ch][d] = domain.ScheduleDay{
				Label:    dayLabel(d, date),
				Date:     date.Format(DateLayout),
				Programs: entries,
			}
		}
	}
	return out
}

func dayLabel(offset int, date time.Time) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Weekday().String()
	}
}
