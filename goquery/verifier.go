// Package goquery verifies assembled manual pages using DOM traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure Verifier implements manualgen.PageVerifier at compile time.
var _ manualgen.PageVerifier = (*Verifier)(nil)

// Verifier checks an assembled page for broken sidebar navigation.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify parses the page and cross-checks every same-page sidebar link
// against the anchors that actually exist on the page. It also counts the
// content sections so callers can compare against the document count.
func (v *Verifier) Verify(html string) (*manualgen.PageReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, manualgen.Errorf(manualgen.EINVALID, "failed to parse page: %v", err)
	}

	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, exists := sel.Attr("id"); exists {
			ids[id] = true
		}
	})

	report := &manualgen.PageReport{
		Sections: doc.Find("main section.section").Length(),
	}

	doc.Find("nav.sidebar a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "#") {
			return
		}

		report.NavLinks++
		if !ids[strings.TrimPrefix(href, "#")] {
			report.BrokenLinks = append(report.BrokenLinks, href)
		}
	})

	return report, nil
}
