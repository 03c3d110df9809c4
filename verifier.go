package manualgen

// PageReport summarizes the structural checks on an assembled page.
type PageReport struct {
	// Sections is the number of content sections on the page, including
	// the overview section.
	Sections int

	// NavLinks is the number of same-page links in the sidebar.
	NavLinks int

	// BrokenLinks lists sidebar hrefs with no matching anchor on the page.
	BrokenLinks []string
}

// PageVerifier checks an assembled page for broken navigation.
type PageVerifier interface {
	Verify(html string) (*PageReport, error)
}
