package ask

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// renderer draws prompt frames and keeps track of what is on screen.
//
// A frame is composed in memory between frameSetup and frameFinish, then
// written in one go. The renderer remembers how many rows the last frame
// used (its footprint) and where it left the cursor, so the next frame can
// move back to the origin, clear everything below it and repaint. Rows are
// wrapped at the terminal width, so the footprint is exact even when the
// input is longer than one line.
type renderer struct {
	term   Terminal
	config RenderConfig
	width  int

	rows      [][]Styled // rows of the frame being composed
	col       int        // cell column of the next write
	lineStart bool       // next write starts a logical line
	caret     *position  // where the cursor goes once the frame is written
	drawn     bool       // a frame is on screen
	lastLines int        // rows written by the last frame
	cursor    position   // cursor position relative to the frame origin
}

type position struct {
	row int
	col int
}

func newRenderer(term Terminal, config RenderConfig) *renderer {
	return &renderer{
		term:   term,
		config: config,
		width:  fallbackWidth,
	}
}

// frameSetup erases the previous frame and starts composing a new one.
func (r *renderer) frameSetup() error {
	if w, _, err := r.term.Size(); err == nil && w > 0 {
		r.width = w
	}
	if err := r.term.HideCursor(); err != nil {
		return err
	}
	if r.drawn {
		if err := r.term.MoveCursor(-r.cursor.col, -r.cursor.row); err != nil {
			return err
		}
		if err := r.term.ClearToEndOfScreen(); err != nil {
			return err
		}
	}
	r.rows = [][]Styled{nil}
	r.col = 0
	r.lineStart = true
	r.caret = nil
	r.cursor = position{}
	return nil
}

// frameFinish writes the composed frame, parks the cursor and flushes.
func (r *renderer) frameFinish() error {
	rows := r.rows
	if len(rows) > 0 && len(rows[len(rows)-1]) == 0 && r.col == 0 {
		rows = rows[:len(rows)-1]
	}
	for _, row := range rows {
		for _, seg := range row {
			if err := r.term.WriteStyled(seg); err != nil {
				return err
			}
		}
		if err := r.term.WriteStyled(NewStyled("\r\n")); err != nil {
			return err
		}
	}
	r.lastLines = len(rows)
	r.drawn = true
	r.cursor = position{row: len(rows)}

	if r.caret != nil {
		caret := *r.caret
		if caret.row > len(rows) {
			caret = position{row: len(rows)}
		}
		if err := r.term.MoveCursor(caret.col, caret.row-len(rows)); err != nil {
			return err
		}
		r.cursor = caret
		if err := r.term.ShowCursor(); err != nil {
			return err
		}
	}
	return r.term.Flush()
}

// cleanup moves the cursor below the frame on screen and shows it.
func (r *renderer) cleanup() error {
	if r.drawn {
		if err := r.term.MoveCursor(-r.cursor.col, r.lastLines-r.cursor.row); err != nil {
			return err
		}
		r.cursor = position{row: r.lastLines}
	}
	if err := r.term.ShowCursor(); err != nil {
		return err
	}
	return r.term.Flush()
}

func (r *renderer) write(s Styled) {
	if r.lineStart {
		r.lineStart = false
		if p := r.config.GlobalPrefix; p != nil {
			r.write(*p)
			r.write(NewStyled(" "))
		}
	}

	var b strings.Builder
	emit := func() {
		if b.Len() == 0 {
			return
		}
		last := len(r.rows) - 1
		r.rows[last] = append(r.rows[last], Styled{Content: b.String(), Style: s.Style})
		b.Reset()
	}
	for _, c := range s.Content {
		if c == '\n' {
			emit()
			r.newLine()
			continue
		}
		w := runeCells(c)
		if r.col > 0 && r.col+w > r.width {
			emit()
			r.rows = append(r.rows, nil)
			r.col = 0
		}
		b.WriteRune(c)
		r.col += w
	}
	emit()
}

func (r *renderer) writeString(s string) {
	r.write(NewStyled(s))
}

func (r *renderer) newLine() {
	r.rows = append(r.rows, nil)
	r.col = 0
	r.lineStart = true
}

// markCaret places the cursor at the current write position.
func (r *renderer) markCaret() {
	pos := position{row: len(r.rows) - 1, col: r.col}
	if pos.col >= r.width {
		pos = position{row: pos.row + 1}
	}
	r.caret = &pos
}

func (r *renderer) printPromptWithPrefix(prefix Styled, prompt string) {
	r.write(prefix)
	r.writeString(" ")
	r.write(Styled{Content: prompt, Style: r.config.Prompt})
}

func (r *renderer) printPrompt(prompt string) {
	r.printPromptWithPrefix(r.config.PromptPrefix, prompt)
}

func (r *renderer) printDefaultValue(value string) {
	r.write(Styled{Content: "(" + value + ")", Style: r.config.DefaultValue})
}

func (r *renderer) printInput(in *input) {
	r.writeString(" ")

	if in.isEmpty() {
		r.markCaret()
		if in.placeholder != "" {
			r.write(Styled{Content: in.placeholder, Style: r.config.Placeholder})
		}
	} else {
		r.write(Styled{Content: in.preCursor(), Style: r.config.TextInput})
		r.markCaret()
		r.write(Styled{Content: in.postCursor(), Style: r.config.TextInput})
	}

	// Keep the cursor off the line end when it sits after the last rune.
	if in.cursor == in.length() {
		r.writeString(" ")
	}
}

func (r *renderer) printPromptWithInput(prompt string, defaultValue *string, in *input) {
	r.printPrompt(prompt)
	if defaultValue != nil {
		r.writeString(" ")
		r.printDefaultValue(*defaultValue)
	}
	r.printInput(in)
	r.newLine()
}

func (r *renderer) renderCanceledPrompt(prompt string) {
	r.printPrompt(prompt)
	r.writeString(" ")
	r.write(r.config.CanceledPromptIndicator)
	r.newLine()
}

func (r *renderer) renderPromptWithAnswer(prompt, answer string) {
	r.printPromptWithPrefix(r.config.AnsweredPromptPrefix, prompt)
	r.writeString(" ")
	r.write(Styled{Content: answer, Style: r.config.Answer})
	r.newLine()
}

func (r *renderer) renderErrorMessage(message string) {
	if message == "" {
		message = r.config.Error.DefaultMessage
	}
	r.write(r.config.Error.Prefix)
	r.write(Styled{Content: " ", Style: r.config.Error.Separator})
	r.write(Styled{Content: message, Style: r.config.Error.Message})
	r.newLine()
}

func (r *renderer) renderHelpMessage(help string) {
	r.write(Styled{Content: "[" + help + "]", Style: r.config.HelpMessage})
	r.newLine()
}

// renderPrompt draws the prompt line without any input.
func (r *renderer) renderPrompt(prompt string) {
	r.printPrompt(prompt)
	r.newLine()
}

func (r *renderer) renderPromptWithInput(prompt string, defaultValue *string, in *input) {
	r.printPromptWithInput(prompt, defaultValue, in)
}

// renderPromptWithMaskedInput draws the input with every rune replaced by
// the password mask, except the last one when revealLast is set.
func (r *renderer) renderPromptWithMaskedInput(prompt string, in *input, revealLast bool) {
	n := in.length()
	mask := strings.Repeat(string(r.config.PasswordMask), n)
	if revealLast && n > 0 {
		mask = strings.Repeat(string(r.config.PasswordMask), n-1) + string(in.chars[n-1])
	}
	masked := newInputWith(mask)
	masked.cursor = in.cursor
	r.printPromptWithInput(prompt, nil, masked)
}

// renderPromptWithHiddenInput draws the prompt line with the cursor after
// it and nothing typed shown.
func (r *renderer) renderPromptWithHiddenInput(prompt string) {
	r.printPrompt(prompt)
	r.writeString(" ")
	r.markCaret()
	r.newLine()
}

func (r *renderer) renderEditorPrompt(prompt, command string) {
	r.printPrompt(prompt)
	r.writeString(" ")
	r.write(Styled{
		Content: fmt.Sprintf("[(e) to open %s, (enter) to submit]", command),
		Style:   r.config.EditorPrompt,
	})
	r.newLine()
}

// optionMarks decides the decorations of each rendered option by its
// original index. Either function may be nil.
type optionMarks struct {
	checked  func(index int) bool
	disabled func(index int) bool
}

func (r *renderer) renderOptions(p page, marks optionMarks) {
	for i, item := range p.items {
		var prefix Styled
		switch {
		case p.cursor == i:
			prefix = r.config.HighlightedOptionPrefix
		case i == 0 && !p.first:
			prefix = r.config.ScrollUpPrefix
		case i+1 == len(p.items) && !p.last:
			prefix = r.config.ScrollDownPrefix
		default:
			prefix = NewStyled(" ")
		}
		r.write(prefix)
		r.writeString(" ")
		used := displayWidth(prefix.Content) + 1

		if marks.checked != nil {
			box := r.config.UnselectedCheckbox
			if marks.checked(item.index) {
				box = r.config.SelectedCheckbox
			}
			if r.config.SelectedOption != nil && p.cursor == i {
				box.Style = *r.config.SelectedOption
			}
			r.write(box)
			r.writeString(" ")
			used += displayWidth(box.Content) + 1
		}

		style := r.config.Option
		switch {
		case marks.disabled != nil && marks.disabled(item.index):
			style = r.config.DisabledOption
		case r.config.SelectedOption != nil && p.cursor == i:
			style = *r.config.SelectedOption
		}
		if r.config.GlobalPrefix != nil {
			used += displayWidth(r.config.GlobalPrefix.Content) + 1
		}
		r.write(Styled{Content: truncateWidth(singleLine(item.label), r.width-used), Style: style})
		r.newLine()
	}
}

// calendarView is everything needed to draw one month.
type calendarView struct {
	month     time.Month
	year      int
	weekStart time.Weekday
	today     time.Time
	selected  time.Time
	min       *time.Time
	max       *time.Time
}

func (r *renderer) renderCalendar(v calendarView) {
	cal := r.config.Calendar
	lower := cases.Lower(language.Und)
	writePrefix := func() {
		r.write(cal.Prefix)
		r.writeString(" ")
	}

	header := lower.String(v.month.String()) + " " + fmt.Sprint(v.year)
	writePrefix()
	r.write(Styled{Content: centerText(header, 20), Style: cal.Header})
	r.newLine()

	days := make([]string, 0, 7)
	for i := range 7 {
		day := (v.weekStart + time.Weekday(i)) % 7
		days = append(days, lower.String(day.String()[:2]))
	}
	writePrefix()
	r.write(Styled{Content: strings.Join(days, " "), Style: cal.WeekHeader})
	r.newLine()

	date := calendarStart(v.month, v.year, v.weekStart)
	for range 6 {
		writePrefix()
		for i := range 7 {
			if i > 0 {
				r.writeString(" ")
			}
			label := fmt.Sprintf("%2d", date.Day())
			selected := sameDay(date, v.selected)
			style := NewStyle()
			switch {
			case selected && cal.SelectedDate != nil:
				style = *cal.SelectedDate
			case selected:
			case sameDay(date, v.today):
				style = cal.TodayDate
			case date.Month() != v.month:
				style = cal.DifferentMonth
			}
			if (v.min != nil && date.Before(*v.min)) || (v.max != nil && date.After(*v.max)) {
				style = cal.Unavailable
			}

			// Without a selection style the terminal cursor marks the
			// selected date, on its first digit.
			if selected && cal.SelectedDate == nil {
				if date.Day() < 10 {
					r.writeString(" ")
					label = label[1:]
				}
				r.markCaret()
			}
			r.write(Styled{Content: label, Style: style})
			date = date.AddDate(0, 0, 1)
		}
		r.newLine()
	}
}

// calendarStart returns the first date shown for a month: the last
// weekStart strictly before the first of the month.
func calendarStart(month time.Month, year int, weekStart time.Weekday) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	back := (int(first.Weekday()) - int(weekStart) + 7) % 7
	if back == 0 {
		back = 7
	}
	return first.AddDate(0, 0, -back)
}

func centerText(s string, width int) string {
	w := displayWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
