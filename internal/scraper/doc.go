// Package scraper fetches pages from the Duy Tan University course-registration
// site and extracts structured records from them.
//
// The site has no API. Every extractor works on a parsed goquery document and
// depends on markup conventions observed upstream: placeholder <option>
// elements, two header rows in the search table, the tb_coursedetail summary
// table, and the calendar table whose class rows carry the "lop" class. When
// that markup changes the extractors return empty results rather than errors.
package scraper
