package goldmarktabs

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"pkt.systems/mdtabs"
)

const passAttribute = "mdtabs-pass"

type transformer struct {
	cfg mdtabs.Config
}

var _ parser.ASTTransformer = (*transformer)(nil)

func (t *transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var paragraphs []*ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if p, ok := n.(*ast.Paragraph); ok {
			paragraphs = append(paragraphs, p)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, p := range paragraphs {
		content := string(p.Lines().Value(source))
		parent := p.Parent()
		if g, ok := mdtabs.ParseOpenMarker(content); ok {
			start := NewGroupStart(g)
			parent.ReplaceChild(parent, p, start)
			parent.InsertAfter(parent, start, NewGroupTabs(g, t.cfg.TabListHTML(g)))
			t.cfg.Logger.WithField("group", g.Name).Debugf("code group opened with %d tabs", len(g.Tabs))
			continue
		}
		if mdtabs.IsCloseMarker(content) {
			parent.ReplaceChild(parent, p, NewGroupEnd())
			t.cfg.Logger.Debug("code group closed")
		}
	}
	doc.SetAttributeString(passAttribute, mdtabs.NewPass())
}

// passOf returns the render-pass state of the document owning n.
func passOf(n ast.Node) *mdtabs.Pass {
	doc := n.OwnerDocument()
	if doc == nil {
		return mdtabs.NewPass()
	}
	if v, ok := doc.AttributeString(passAttribute); ok {
		if p, ok := v.(*mdtabs.Pass); ok {
			return p
		}
	}
	p := mdtabs.NewPass()
	doc.SetAttributeString(passAttribute, p)
	return p
}
