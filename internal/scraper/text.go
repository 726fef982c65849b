package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// collapse trims s and replaces each whitespace run with a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// label normalises Vietnamese label text for table lookups. Upstream pages
// mix precomposed and decomposed diacritics.
func label(s string) string {
	return norm.NFC.String(collapse(s))
}

// cellText returns the trimmed text of the i-th cell in cells.
func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
