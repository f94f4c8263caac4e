package goldmarktabs

import (
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"pkt.systems/mdtabs"
)

const (
	transformerPriority = 500
	rendererPriority    = 100
)

// Extender installs grouped code tabs into a goldmark.Markdown.
type Extender struct {
	tabOptions  []mdtabs.Option
	htmlOptions []html.Option
	fallback    renderer.NodeRenderer
}

// Option configures an Extender.
type Option func(*Extender)

// New returns an extender configured by opts.
func New(opts ...Option) *Extender {
	e := &Extender{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithTabOptions sets class names, copy button and logger.
func WithTabOptions(opts ...mdtabs.Option) Option {
	return func(e *Extender) {
		e.tabOptions = append(e.tabOptions, opts...)
	}
}

// WithHTMLOptions configures the default fence renderer. Options given to
// the goldmark renderer (goldmark.WithRendererOptions) reach the fence
// renderer too and are applied after these.
func WithHTMLOptions(opts ...html.Option) Option {
	return func(e *Extender) {
		e.htmlOptions = append(e.htmlOptions, opts...)
	}
}

// WithFallback renders fence contents with r instead of goldmark's HTML
// renderer. Only r's fenced code block function is used.
func WithFallback(r renderer.NodeRenderer) Option {
	return func(e *Extender) {
		e.fallback = r
	}
}

// WithHighlighting renders fence contents with chroma syntax highlighting.
func WithHighlighting(opts ...highlighting.Option) Option {
	return WithFallback(highlighting.NewHTMLRenderer(opts...))
}

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	cfg := mdtabs.NewConfig(e.tabOptions...)
	fallback := e.fallback
	if fallback == nil {
		fallback = html.NewRenderer(e.htmlOptions...)
	}
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{cfg: cfg}, transformerPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newHTMLRenderer(cfg, fallback), rendererPriority),
	))
}
