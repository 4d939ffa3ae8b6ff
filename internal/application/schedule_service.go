package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// ClockLayout is the zero-padded "HH:MM" form program times use
const ClockLayout = "15:04"

// IsCurrentProgram reports whether a row is highlighted as airing now. Only
// today's live-flagged programs that started at or before now qualify; the
// program duration is not consulted, so a live program stays current for the
// rest of the day.
func IsCurrentProgram(program domain.ProgramEntry, isToday bool, nowHHMM string) bool {
	if !isToday {
		return false
	}
	return program.Time <= nowHHMM && program.IsLive
}

// CurrentProgram returns the first program of the day flagged as current.
// Several rows may qualify at once; views flag each row independently.
func CurrentProgram(day domain.ScheduleDay, isToday bool, nowHHMM string) (domain.ProgramEntry, bool) {
	if !isToday {
		return domain.ProgramEntry{}, false
	}
	for _, program := range day.Programs {
		if IsCurrentProgram(program, isToday, nowHHMM) {
			return program, true
		}
	}
	return domain.ProgramEntry{}, false
}

// SelectDay returns days[index] or ErrIndexOutOfRange
func SelectDay(days []domain.ScheduleDay, index int) (domain.ScheduleDay, error) {
	if index < 0 || index >= len(days) {
		return domain.ScheduleDay{}, fmt.Errorf("day %d of %d: %w", index, len(days), ErrIndexOutOfRange)
	}
	return days[index], nil
}

// ClampIndex limits index to [0, n-1]; it returns 0 for empty lists
func ClampIndex(index, n int) int {
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// ProgramRow is one rendered schedule row
type ProgramRow struct {
	domain.ProgramEntry
	Current    bool
	GenreColor string
}

// DayTab is one entry of the day selector
type DayTab struct {
	Label string
	Date  string
}

// ScheduleView is what the schedule screen renders
type ScheduleView struct {
	ChannelIndex int
	Channel      domain.ChannelEntry
	DayIndex     int
	Day          DayTab
	Days         []DayTab
	Programs     []ProgramRow
	Now          string
}

// ScheduleService builds schedule views from the compiled-in program data
type ScheduleService struct {
	channels    *ChannelService
	schedules   domain.ScheduleRepository
	sessions    *SessionService
	genreColors map[string]string
	location    *time.Location
	now         func() time.Time
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	channels *ChannelService,
	schedules domain.ScheduleRepository,
	sessions *SessionService,
	genreColors map[string]string,
	location *time.Location,
) *ScheduleService {
	if location == nil {
		location = time.Local
	}
	return &ScheduleService{
		channels:    channels,
		schedules:   schedules,
		sessions:    sessions,
		genreColors: genreColors,
		location:    location,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock
func (s *ScheduleService) WithClock(now func() time.Time) *ScheduleService {
	s.now = now
	return s
}

// Now returns the current wall-clock time as "HH:MM"
func (s *ScheduleService) Now() string {
	return s.now().In(s.location).Format(ClockLayout)
}

// GenreColor resolves a program genre to its badge color
func (s *ScheduleService) GenreColor(genre string) string {
	return PickCategoryColor(genre, s.genreColors, DefaultBadgeColor)
}

// View builds the schedule for a channel and day. Out of range indexes fail
// with ErrIndexOutOfRange; callers clamp first.
func (s *ScheduleService) View(channelIndex, dayIndex int) (*ScheduleView, error) {
	channel, err := s.channels.ChannelAt(channelIndex)
	if err != nil {
		return nil, err
	}

	days, err := s.schedules.GetByChannelIndex(channelIndex)
	if err != nil {
		return nil, fmt.Errorf("schedule for channel %d: %w", channelIndex, err)
	}

	day, err := SelectDay(days, dayIndex)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	isToday := dayIndex == 0

	view := &ScheduleView{
		ChannelIndex: channelIndex,
		Channel:      channel,
		DayIndex:     dayIndex,
		Day:          DayTab{Label: day.Label, Date: day.Date},
		Days:         make([]DayTab, len(days)),
		Programs:     make([]ProgramRow, len(day.Programs)),
		Now:          now,
	}
	for i, d := range days {
		view.Days[i] = DayTab{Label: d.Label, Date: d.Date}
	}
	for i, program := range day.Programs {
		view.Programs[i] = ProgramRow{
			ProgramEntry: program,
			Current:      IsCurrentProgram(program, isToday, now),
			GenreColor:   s.GenreColor(program.Genre),
		}
	}
	return view, nil
}

// SelectForSession stores a viewer's channel/day selection and returns the
// resulting view. Nil arguments keep the stored selection. The day index is
// clamped against the selected channel's day list, which may be shorter
// than the previous channel's.
func (s *ScheduleService) SelectForSession(sessionID uuid.UUID, channelIndex, dayIndex *int) (*ScheduleView, error) {
	var view *ScheduleView
	_, err := s.sessions.Mutate(sessionID, func(sess *domain.Session) error {
		ch := sess.ScheduleChannel
		if channelIndex != nil {
			ch = *channelIndex
		}
		if ch < 0 || ch >= s.channels.Count() {
			return fmt.Errorf("channel %d: %w", ch, ErrIndexOutOfRange)
		}

		days, err := s.schedules.GetByChannelIndex(ch)
		if err != nil {
			return err
		}

		day := sess.ScheduleDay
		if dayIndex != nil {
			day = *dayIndex
		}
		day = ClampIndex(day, len(days))

		v, err := s.View(ch, day)
		if err != nil {
			return err
		}
		sess.ScheduleChannel = ch
		sess.ScheduleDay = day
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SessionView renders the schedule the viewer last selected
func (s *ScheduleService) SessionView(sessionID uuid.UUID) (*ScheduleView, error) {
	return s.SelectForSession(sessionID, nil, nil)
}
