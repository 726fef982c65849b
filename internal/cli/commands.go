package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pfrederiksen/dtu-calendar/internal/calendar"
	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/filter"
)

func newYearsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List academic years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := a.courses.AcademicYears(cmd.Context())
			if err != nil {
				return err
			}
			return a.write(cmd, years, func() { renderYears(cmd.OutOrStdout(), years) })
		},
	}
}

func newSemestersCmd(a *app) *cobra.Command {
	var year string
	cmd := &cobra.Command{
		Use:   "semesters",
		Short: "List the semesters of an academic year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters, err := a.courses.Semesters(cmd.Context(), year)
			if err != nil {
				return err
			}
			return a.write(cmd, semesters, func() { renderSemesters(cmd.OutOrStdout(), semesters) })
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "Academic year id (see 'years') (required)")
	cmd.MarkFlagRequired("year")
	return cmd
}

func newProgramsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List academic programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := a.courses.AcademicPrograms(cmd.Context())
			if err != nil {
				return err
			}
			return a.write(cmd, programs, func() { renderPrograms(cmd.OutOrStdout(), programs) })
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var query, semester, sortBy string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search courses by code or name within a semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := SortOrder(sortBy)
			if !order.Valid() {
				return fmt.Errorf("invalid sort order: %s (must be 'none', 'code' or 'name')", sortBy)
			}
			results, err := a.courses.Search(cmd.Context(), query, semester)
			if err != nil {
				return err
			}
			sortResults(results, order)
			return a.write(cmd, results, func() { renderResults(cmd.OutOrStdout(), results) })
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Keyword matched against course code and name (required)")
	cmd.Flags().StringVar(&semester, "semester", "", "Semester id (required)")
	cmd.Flags().StringVar(&sortBy, "sort", string(SortNone), "Sort order: none, code or name")
	cmd.MarkFlagRequired("query")
	cmd.MarkFlagRequired("semester")
	return cmd
}

func newDetailCmd(a *app) *cobra.Command {
	var courseID, semester, days, types, lecturers, locations string
	var withSlots bool
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Show a course summary and its classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := filter.NewFilter()
			parsedDays, err := filter.ParseDays(days)
			if err != nil {
				return err
			}
			f.Days = parsedDays
			f.ClassTypes = filter.ParseList(types)
			f.Lecturers = filter.ParseList(lecturers)
			f.Locations = filter.ParseList(locations)
			f.WithSlots = withSlots

			detail, err := a.courses.CourseDetail(cmd.Context(), courseID, semester)
			if err != nil {
				return err
			}
			if !f.IsEmpty() {
				a.log.Debug("filtering classes", zap.Stringer("filter", f))
				detail.Classes = f.Apply(detail.Classes)
			}
			return a.write(cmd, detail, func() { renderDetail(cmd.OutOrStdout(), detail) })
		},
	}
	cmd.Flags().StringVar(&courseID, "course", "", "Course id from a search result (required)")
	cmd.Flags().StringVar(&semester, "semester", "", "Semester id (required)")
	cmd.Flags().StringVar(&days, "day", "", "Only classes meeting on these days, e.g. T2,T5")
	cmd.Flags().StringVar(&types, "type", "", "Only these class types, e.g. LEC,LAB")
	cmd.Flags().StringVar(&lecturers, "lecturer", "", "Only classes whose lecturer contains one of these names")
	cmd.Flags().StringVar(&locations, "location", "", "Only classes whose room or campus contains one of these values")
	cmd.Flags().BoolVar(&withSlots, "with-slots", false, "Only classes with free slots")
	cmd.MarkFlagRequired("course")
	cmd.MarkFlagRequired("semester")
	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	var semester string
	cmd := &cobra.Command{
		Use:   "calendar <class-code>",
		Short: "Show the weekly schedule of one class, e.g. \"CS 211 A\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := a.courses.CalendarByCourseCode(cmd.Context(), args[0], semester)
			if err != nil {
				return err
			}
			return a.write(cmd, class, func() { renderClass(cmd.OutOrStdout(), class) })
		},
	}
	cmd.Flags().StringVar(&semester, "semester", "", "Semester id (required)")
	cmd.MarkFlagRequired("semester")
	return cmd
}

func newICSCmd(a *app) *cobra.Command {
	var semester, start, out string
	cmd := &cobra.Command{
		Use:   "ics <class-code>",
		Short: "Export one class's schedule as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var weekOne time.Time
			if start != "" {
				t, err := time.ParseInLocation(course.DateLayout, start, calendar.Local)
				if err != nil {
					return fmt.Errorf("invalid --start %q: want YYYY-MM-DD", start)
				}
				weekOne = t
			}

			ics, err := a.courses.ExportCalendar(cmd.Context(), args[0], semester, weekOne)
			if err != nil {
				return err
			}

			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), ics)
				return err
			}
			// Owner read/write only.
			if err := os.WriteFile(out, []byte(ics), 0600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&semester, "semester", "", "Semester id (required)")
	cmd.Flags().StringVar(&start, "start", "", "Monday of teaching week 1, YYYY-MM-DD (default: the class's study period start)")
	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	cmd.MarkFlagRequired("semester")
	return cmd
}

// write prints v as JSON or runs the text renderer.
func (a *app) write(cmd *cobra.Command, v interface{}, text func()) error {
	if a.format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	text()
	return nil
}
