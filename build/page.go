package build

import (
	"bytes"
	"html/template"

	"github.com/WhiteCrosstheRiver/manualgen"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// navItem is one sidebar entry.
type navItem struct {
	Anchor string
	Title  string
}

// sectionItem is one rendered content block.
type sectionItem struct {
	Anchor  string
	Content template.HTML
}

// pageData feeds the page template. Overview and section content is
// pre-rendered HTML; nav titles are escaped by the template.
type pageData struct {
	Title        string
	HighlightCSS template.CSS
	Nav          []navItem
	Overview     template.HTML
	Sections     []sectionItem
}

// assemblePage renders the complete HTML document.
func assemblePage(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, manualgen.Errorf(manualgen.EINTERNAL, "page assembly failed: %v", err)
	}
	return buf.Bytes(), nil
}
