package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func renderYears(w io.Writer, years []course.AcademicYear) {
	if len(years) == 0 {
		fmt.Fprintln(w, "No academic years found.")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Academic year"})
	for _, y := range years {
		t.AppendRow(table.Row{y.AcademicYearID, y.Name})
	}
	t.Render()
}

func renderSemesters(w io.Writer, semesters []course.Semester) {
	if len(semesters) == 0 {
		fmt.Fprintln(w, "No semesters found.")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Semester"})
	for _, s := range semesters {
		t.AppendRow(table.Row{s.SemesterID, s.Name})
	}
	t.Render()
}

func renderPrograms(w io.Writer, programs []course.AcademicProgram) {
	if len(programs) == 0 {
		fmt.Fprintln(w, "No academic programs found.")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Program"})
	for _, p := range programs {
		t.AppendRow(table.Row{p.AcademicProgramID, p.Name})
	}
	t.Render()
}

func renderResults(w io.Writer, results []course.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Code", "Name", "Course ID", "Semester ID"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Code, r.Name, deref(r.CourseID), deref(r.SemesterID)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d", len(results)), "", ""})
	t.Render()
}

func renderDetail(w io.Writer, detail *course.Detail) {
	keys := make([]string, 0, len(detail.Info))
	for k := range detail.Info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	info := newTable(w)
	info.AppendHeader(table.Row{"Field", "Value"})
	for _, k := range keys {
		info.AppendRow(table.Row{k, detail.Info[k]})
	}
	info.Render()

	if len(detail.Classes) == 0 {
		fmt.Fprintln(w, "No classes found.")
		return
	}

	classes := newTable(w)
	classes.AppendHeader(table.Row{"Class", "Reg. code", "Type", "Slots", "Weeks", "Schedule", "Room", "Lecturer", "Status"})
	for _, c := range detail.Classes {
		classes.AppendRow(table.Row{
			c.CourseCode,
			c.RegistrationCode,
			c.ClassType,
			c.RemainingSlots,
			c.Weeks,
			formatTimes(c.Schedule),
			c.Rooms,
			c.Lecturer,
			c.RegistrationStatus,
		})
	}
	classes.Render()
}

func renderClass(w io.Writer, c *course.ClassSchedule) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Class", c.CourseCode},
		{"Registration code", c.RegistrationCode},
		{"Type", c.ClassType},
		{"Remaining slots", c.RemainingSlots},
		{"Registration period", registrationText(c.RegistrationPeriod)},
		{"Weeks", c.Weeks},
		{"Schedule", formatTimes(c.Schedule)},
		{"Cancelled weeks", formatCancelled(c.CanceledWeeks)},
		{"Rooms", c.Rooms},
		{"Location", c.Location},
		{"Lecturer", c.Lecturer},
		{"Registration", c.RegistrationStatus},
		{"Deployment", c.DeploymentStatus},
		{"Study period", c.StudyPeriod.Start + " - " + c.StudyPeriod.End},
	})
	t.Render()
}

// formatTimes renders a schedule in week order, e.g. "T2 07:00-09:00, T5 13:00-15:00".
func formatTimes(times map[schedule.Day]schedule.TimeRange) string {
	parts := make([]string, 0, len(times))
	for _, d := range schedule.Days {
		if tr, ok := times[d]; ok {
			parts = append(parts, fmt.Sprintf("%s %s-%s", d, tr.Start, tr.End))
		}
	}
	return strings.Join(parts, ", ")
}

func formatCancelled(weeks map[schedule.Day][]int) string {
	parts := make([]string, 0, len(weeks))
	for _, d := range schedule.Days {
		ws, ok := weeks[d]
		if !ok || len(ws) == 0 {
			continue
		}
		nums := make([]string, len(ws))
		for i, n := range ws {
			nums[i] = fmt.Sprint(n)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", d, strings.Join(nums, ",")))
	}
	return strings.Join(parts, "; ")
}

func registrationText(p *course.RegistrationPeriod) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
