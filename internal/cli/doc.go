// Package cli implements the command-line interface for dtu-calendar.
//
// The cli package provides the Cobra-based CLI: one subcommand per course
// lookup (years, semesters, programs, search, detail, calendar), an ics
// exporter, and serve, which runs the HTTP API. Output is a table or indented
// JSON. It wires config, logging, the scraper and the course service.
package cli
