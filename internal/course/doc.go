// Package course defines the records extracted from the course-registration site.
//
// Every value is built fresh for one upstream request and carries no identity
// beyond the opaque identifiers the site itself hands out. JSON field names
// match what the calendar frontend consumes.
package course
