package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

const (
	ProductID = "-//dtu-calendar//dtu-calendar//VI"
	uidDomain = "dtu-calendar"
)

// Local is the campus time zone (UTC+7, no DST).
var Local = time.FixedZone("ICT", 7*60*60)

var (
	ErrNoSchedule = errors.New("class has no weekly schedule")
	ErrNoWeeks    = errors.New("class has no teaching weeks")
)

var weekNumber = regexp.MustCompile(`\d+`)

// Options tunes Export. The zero value is usable.
type Options struct {
	// Summary replaces the event title, which defaults to the class code.
	Summary string
	// Now stamps DTSTAMP. Defaults to time.Now.
	Now func() time.Time
}

// WeekRange reads the first and last week number out of a weeks cell such as
// "1--18". A single number yields a one-week range.
func WeekRange(weeks string) (first, last int, ok bool) {
	nums := weekNumber.FindAllString(weeks, -1)
	if len(nums) == 0 {
		return 0, 0, false
	}
	first, _ = strconv.Atoi(nums[0])
	last, _ = strconv.Atoi(nums[len(nums)-1])
	if first <= 0 || last < first {
		return 0, 0, false
	}
	return first, last, true
}

// MondayOf returns midnight of the Monday starting t's week, in t's location.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// Export renders one VEVENT per teaching week and meeting day of class,
// skipping cancelled weeks. Week 1 is the week containing weekOne; a zero
// weekOne falls back to the class's study period start.
func Export(class *course.ClassSchedule, weekOne time.Time, opts Options) (string, error) {
	if len(class.Schedule) == 0 {
		return "", ErrNoSchedule
	}
	first, last, ok := WeekRange(class.Weeks)
	if !ok {
		return "", ErrNoWeeks
	}

	if weekOne.IsZero() {
		start, err := time.ParseInLocation(course.DateLayout, class.StudyPeriod.Start, Local)
		if err != nil {
			return "", fmt.Errorf("parsing study period start: %w", err)
		}
		weekOne = start
	}
	monday := MondayOf(weekOne.In(Local))

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := now().UTC()

	summary := opts.Summary
	if summary == "" {
		summary = class.CourseCode
	}

	parsed := class.ParsedSchedule()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for week := first; week <= last; week++ {
		for _, day := range schedule.Days {
			tr, ok := parsed.Times[day]
			if !ok || parsed.IsCancelled(day, week) {
				continue
			}

			date := monday.AddDate(0, 0, (week-1)*7+day.Offset())
			start, err := atClock(date, tr.Start)
			if err != nil {
				return "", fmt.Errorf("%s week %d: %w", day, week, err)
			}
			end, err := atClock(date, tr.End)
			if err != nil {
				return "", fmt.Errorf("%s week %d: %w", day, week, err)
			}

			event := cal.AddEvent(eventUID(class, week, day))
			event.SetDtStampTime(stamp)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(summary)
			if loc := location(class); loc != "" {
				event.SetLocation(loc)
			}
			event.SetDescription(description(class, week))
			event.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize(), nil
}

// atClock places an upstream clock reading ("7:00", "07:00:00") on date.
func atClock(date time.Time, clock string) (time.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			y, m, d := date.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, date.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock %q", clock)
}

func eventUID(class *course.ClassSchedule, week int, day schedule.Day) string {
	id := class.RegistrationCode
	if id == "" {
		id = class.CourseCode
	}
	id = strings.Join(strings.Fields(id), "-")
	return fmt.Sprintf("%s-w%02d-%s@%s", id, week, day, uidDomain)
}

func location(class *course.ClassSchedule) string {
	parts := make([]string, 0, 2)
	if class.Rooms != "" {
		parts = append(parts, class.Rooms)
	}
	if class.Location != "" {
		parts = append(parts, class.Location)
	}
	return strings.Join(parts, " - ")
}

func description(class *course.ClassSchedule, week int) string {
	lines := []string{fmt.Sprintf("Tuần %d", week)}
	if class.Lecturer != "" {
		lines = append(lines, "Giảng viên: "+class.Lecturer)
	}
	if class.RegistrationCode != "" {
		lines = append(lines, "Mã đăng ký: "+class.RegistrationCode)
	}
	return strings.Join(lines, "\n")
}
