package goldmarktabs

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"pkt.systems/mdtabs"
)

// funcCapture collects the functions a NodeRenderer registers.
type funcCapture map[ast.NodeKind]renderer.NodeRendererFunc

func (c funcCapture) Register(kind ast.NodeKind, f renderer.NodeRendererFunc) {
	c[kind] = f
}

type htmlRenderer struct {
	cfg      mdtabs.Config
	fallback renderer.NodeRenderer
	fence    renderer.NodeRendererFunc
}

var (
	_ renderer.NodeRenderer = (*htmlRenderer)(nil)
	_ renderer.SetOptioner  = (*htmlRenderer)(nil)
)

// newHTMLRenderer wraps the fenced code block function of fallback.
func newHTMLRenderer(cfg mdtabs.Config, fallback renderer.NodeRenderer) *htmlRenderer {
	funcs := funcCapture{}
	if fallback != nil {
		fallback.RegisterFuncs(funcs)
	}
	fence := funcs[ast.KindFencedCodeBlock]
	if fence == nil {
		fallback = html.NewRenderer()
		funcs = funcCapture{}
		fallback.RegisterFuncs(funcs)
		fence = funcs[ast.KindFencedCodeBlock]
	}
	return &htmlRenderer{cfg: cfg, fallback: fallback, fence: fence}
}

// SetOption passes the host renderer's options on to the fallback, which
// is not registered with the host itself.
func (r *htmlRenderer) SetOption(name renderer.OptionName, value interface{}) {
	if s, ok := r.fallback.(renderer.SetOptioner); ok {
		s.SetOption(name, value)
	}
}

func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindGroupStart, r.renderGroupStart)
	reg.Register(KindGroupTabs, r.renderGroupTabs)
	reg.Register(KindGroupEnd, r.renderGroupEnd)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *htmlRenderer) renderGroupStart(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*GroupStart)
	tabs, ok := n.NextSibling().(*GroupTabs)
	if !ok {
		return ast.WalkStop, mdtabs.ErrMissingTabs
	}
	_, _ = w.WriteString(mdtabs.GroupStartHTML(mdtabs.GroupInfo(n.Group.Name), tabs.HTML))
	return ast.WalkContinue, nil
}

func (r *htmlRenderer) renderGroupTabs(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	if _, ok := node.PreviousSibling().(*GroupStart); !ok {
		return ast.WalkStop, mdtabs.ErrOrphanTabs
	}
	return ast.WalkSkipChildren, nil
}

func (r *htmlRenderer) renderGroupEnd(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(mdtabs.GroupEndHTML())
	}
	return ast.WalkContinue, nil
}

func (r *htmlRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		status, err := r.fence(w, source, node, false)
		if err != nil {
			return status, err
		}
		_, _ = w.WriteString(mdtabs.CloseBlock())
		return status, nil
	}
	n := node.(*ast.FencedCodeBlock)
	pass := passOf(n)
	id := pass.NextBlockID()
	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	if meta, ok := mdtabs.ParseFenceInfo(info); ok {
		active := pass.Enter(meta.Group)
		r.cfg.Logger.WithField("group", meta.Group).WithField("tab", meta.Tab).
			Debugf("fence %s active=%t", id, active)
		_, _ = w.WriteString(r.cfg.OpenGroupedBlock(meta, active, id))
	} else {
		_, _ = w.WriteString(r.cfg.OpenStandaloneBlock(id))
	}
	return r.fence(w, source, node, true)
}
