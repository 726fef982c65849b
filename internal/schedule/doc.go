// Package schedule parses the study-hours cell of a class row.
//
// The upstream registration site packs a class's weekly meeting times and its
// cancelled weeks into a single table cell, for example:
//
//	T2: 07:00-09:30 T5: 13:00-15:30 Tuần hủy: T2: Hủy 3,5,7
//
// Day tokens T2 through T7 denote Monday through Saturday. Parse never fails:
// text that does not match contributes nothing.
package schedule
