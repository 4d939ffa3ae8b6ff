package domain

// ProgramEntry is one row of a day's schedule
type ProgramEntry struct {
	Time     string  `json:"time"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Duration string  `json:"duration"`
	Rating   float64 `json:"rating"`
	IsLive   bool    `json:"is_live"`
}

// ScheduleDay groups the programs of one day for one channel.
// Programs are expected, not enforced, to be in non-decreasing time order.
type ScheduleDay struct {
	Label    string         `json:"label"`
	Date     string         `json:"date"`
	Programs []ProgramEntry `json:"programs"`
}

// ScheduleRepository serves schedules index-aligned with the channel catalog
type ScheduleRepository interface {
	GetByChannelIndex(index int) ([]ScheduleDay, error)
}
