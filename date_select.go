package ask

import (
	"context"
	"time"
)

const dateSelectHelp = "arrows to move, []{} move months and years, enter to select"

// timeNow is replaced in tests to pin "today".
var timeNow = time.Now

// DateSelect asks for a date on an interactive calendar.
//
// Keys: arrows move by day and week, PageUp/PageDown or [ and ] move by
// month, Ctrl+arrows or { and } by year. With vim mode
// (on by default) h, j, k and l move like the arrows. The selection never
// leaves [Min, Max].
//
// Answers are dates at midnight UTC.
type DateSelect struct {
	Message      string
	StartingDate time.Time  // Defaults to today
	Min          *time.Time // Earliest selectable date
	Max          *time.Time // Latest selectable date
	WeekStart    time.Weekday
	Validators   []Validator[time.Time]
	Formatter    Formatter[time.Time]

	config Config

	current  time.Time
	min, max *time.Time
	errorLine
}

// NewDateSelect creates a DateSelect prompt starting today, with weeks
// starting on Sunday.
func NewDateSelect(message string, opts ...Option) *DateSelect {
	return &DateSelect{
		Message:   message,
		WeekStart: time.Sunday,
		Formatter: DefaultDateFormatter,
		config:    newConfig(append([]Option{WithVimMode(true)}, opts...)),
	}
}

// Prompt shows the calendar and returns the selected date.
func (d *DateSelect) Prompt() (time.Time, error) {
	return d.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (d *DateSelect) PromptContext(ctx context.Context) (time.Time, error) {
	return run[time.Time](ctx, d.config, d.Message, d)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (d *DateSelect) PromptSkippable() (time.Time, bool, error) {
	return skippable(d.Prompt())
}

// dateOnly drops the clock of t, keeping its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths moves t by n months, keeping the day when the target month is
// long enough and using its last day otherwise.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := min(t.Day(), daysIn(first.Month(), first.Year()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func (d *DateSelect) setup() error {
	if d.Formatter == nil {
		d.Formatter = DefaultDateFormatter
	}
	if d.WeekStart < time.Sunday || d.WeekStart > time.Saturday {
		return invalidConfig("invalid week start %d", int(d.WeekStart))
	}

	d.min, d.max = nil, nil
	if d.Min != nil {
		m := dateOnly(*d.Min)
		d.min = &m
	}
	if d.Max != nil {
		m := dateOnly(*d.Max)
		d.max = &m
	}
	if d.min != nil && d.max != nil && d.min.After(*d.max) {
		return invalidConfig("min date %s is after max date %s",
			d.min.Format(time.DateOnly), d.max.Format(time.DateOnly))
	}

	start := d.StartingDate
	if start.IsZero() {
		start = timeNow()
	}
	d.current = dateOnly(start)
	if d.min != nil && d.current.Before(*d.min) {
		return invalidConfig("starting date %s is before min date %s",
			d.current.Format(time.DateOnly), d.min.Format(time.DateOnly))
	}
	if d.max != nil && d.current.After(*d.max) {
		return invalidConfig("starting date %s is after max date %s",
			d.current.Format(time.DateOnly), d.max.Format(time.DateOnly))
	}
	return nil
}

// moveTo selects date, clamped to the allowed range.
func (d *DateSelect) moveTo(date time.Time) bool {
	if d.min != nil && date.Before(*d.min) {
		date = *d.min
	}
	if d.max != nil && date.After(*d.max) {
		date = *d.max
	}
	if date.Equal(d.current) {
		return false
	}
	d.current = date
	return true
}

func (d *DateSelect) handle(k Key) (bool, error) {
	if d.config.VimMode {
		switch {
		case k.isChar('h'):
			return d.moveTo(d.current.AddDate(0, 0, -1)), nil
		case k.isChar('l'):
			return d.moveTo(d.current.AddDate(0, 0, 1)), nil
		case k.isChar('k'):
			return d.moveTo(d.current.AddDate(0, 0, -7)), nil
		case k.isChar('j'):
			return d.moveTo(d.current.AddDate(0, 0, 7)), nil
		}
	}

	ctrl := k.Has(ModCtrl)
	switch {
	case k.Type == KeyPageUp, k.isChar('['):
		return d.moveTo(addMonths(d.current, -1)), nil
	case k.Type == KeyPageDown, k.isChar(']'):
		return d.moveTo(addMonths(d.current, 1)), nil
	case (k.Type == KeyLeft || k.Type == KeyUp) && ctrl, k.isChar('{'):
		return d.moveTo(addMonths(d.current, -12)), nil
	case (k.Type == KeyRight || k.Type == KeyDown) && ctrl, k.isChar('}'):
		return d.moveTo(addMonths(d.current, 12)), nil
	case k.Type == KeyLeft:
		return d.moveTo(d.current.AddDate(0, 0, -1)), nil
	case k.Type == KeyRight:
		return d.moveTo(d.current.AddDate(0, 0, 1)), nil
	case k.Type == KeyUp:
		return d.moveTo(d.current.AddDate(0, 0, -7)), nil
	case k.Type == KeyDown, k.Type == KeyTab:
		return d.moveTo(d.current.AddDate(0, 0, 7)), nil
	}
	return false, nil
}

func (d *DateSelect) submit() (time.Time, bool, error) {
	res, err := validate(d.Validators, d.current)
	if err != nil {
		return time.Time{}, false, err
	}
	if !res.IsValid() {
		d.reject(res.Message())
		return time.Time{}, false, nil
	}
	return d.current, true, nil
}

func (d *DateSelect) render(r *renderer) {
	r.renderPrompt(d.Message)
	r.renderCalendar(calendarView{
		month:     d.current.Month(),
		year:      d.current.Year(),
		weekStart: d.WeekStart,
		today:     dateOnly(timeNow()),
		selected:  d.current,
		min:       d.min,
		max:       d.max,
	})
}

func (d *DateSelect) formatAnswer(answer time.Time) string { return d.Formatter(answer) }

func (d *DateSelect) preCancel() bool { return true }

// inputEmpty is false: Ctrl+D does not cancel a calendar.
func (d *DateSelect) inputEmpty() bool { return false }

func (d *DateSelect) helpMessage() string {
	if d.config.HelpMessage != "" {
		return d.config.HelpMessage
	}
	return dateSelectHelp
}
