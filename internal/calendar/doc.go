// Package calendar exports a class's weekly timetable as an iCalendar feed.
package calendar
