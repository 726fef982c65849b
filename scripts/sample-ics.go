package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/dtu-calendar/internal/calendar"
	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

func main() {
	// A sample class as the detail page would yield it
	raw := "T2: 07:00-09:00 T5: 13:00-15:00 Tuần hủy: T2: Hủy 3,5"
	parsed := schedule.Parse(raw)

	class := &course.ClassSchedule{
		CourseCode:       "CS 211 A",
		RegistrationCode: "CS211202502001",
		ClassType:        "LEC",
		Weeks:            "1--15",
		Schedule:         parsed.Times,
		CanceledWeeks:    parsed.CancelWeeks,
		Rooms:            "501",
		Location:         "254 Nguyễn Văn Linh",
		Lecturer:         "Nguyễn Văn A",
		StudyPeriod:      course.PlaceholderStudyPeriod(time.Now()),
	}

	icsContent, err := calendar.Export(class, time.Time{}, calendar.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting calendar: %v\n", err)
		os.Exit(1)
	}

	// Write to file (owner read/write only)
	filename := "sample-class.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
