package goldmark

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"github.com/WhiteCrosstheRiver/manualgen"
)

// Ensure idGenerator implements parser.IDs at compile time.
var _ parser.IDs = (*idGenerator)(nil)

// idGenerator assigns heading IDs using the domain slug rules. Duplicate
// slugs get numeric suffixes, and the used set spans every document rendered
// through the same Renderer, so anchors stay unique page-wide.
type idGenerator struct {
	used map[string]bool
}

func newIDGenerator() *idGenerator {
	return &idGenerator{used: make(map[string]bool)}
}

func (g *idGenerator) Generate(value []byte, kind ast.NodeKind) []byte {
	slug := manualgen.Slugify(string(value))
	if slug == "" {
		slug = "heading"
	}

	if !g.used[slug] {
		g.used[slug] = true
		return []byte(slug)
	}

	for i := 1; ; i++ {
		candidate := slug + "-" + strconv.Itoa(i)
		if !g.used[candidate] {
			g.used[candidate] = true
			return []byte(candidate)
		}
	}
}

func (g *idGenerator) Put(value []byte) {}
