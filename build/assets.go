package build

import _ "embed"

// Fixed site assets. Their content never varies per run and nothing in them
// derives from the input documents.

//go:embed assets/style.css
var styleCSS []byte

//go:embed assets/script.js
var scriptJS []byte

//go:embed assets/page.html.tmpl
var pageTemplate string
