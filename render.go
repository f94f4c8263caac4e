package mdtabs

import (
	"errors"
	"fmt"
	"io"

	"gitlab.com/golang-commonmark/markdown"
)

var (
	// ErrMissingTabs reports a group-start token that is not followed by its
	// group-tabs token.
	ErrMissingTabs = errors.New("group start without tab list")
	// ErrOrphanTabs reports a group-tabs token that does not follow a
	// group-start token.
	ErrOrphanTabs = errors.New("tab list without group start")
)

// Env is the per-render context passed to rules.
type Env struct {
	Pass   *Pass
	Config Config
	host   *markdown.Markdown
}

// RenderHost renders tokens with the tokenizer's default renderer.
func (e *Env) RenderHost(tokens ...markdown.Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return e.host.RenderTokensToString(tokens)
}

// RuleFunc renders tokens[idx].
type RuleFunc func(tokens []Token, idx int, env *Env) (string, error)

// Renderer renders token streams with group-aware rules. It holds no
// per-document state and is safe for concurrent use once configured.
type Renderer struct {
	host  *markdown.Markdown
	cfg   Config
	rules map[Kind]RuleFunc
}

// NewRenderer returns a Renderer on top of host with the group and fence
// rules installed. A nil host uses an HTML-enabled tokenizer with tables.
func NewRenderer(host *markdown.Markdown, opts ...Option) *Renderer {
	if host == nil {
		host = markdown.New(markdown.HTML(true), markdown.Tables(true))
	}
	r := &Renderer{
		host:  host,
		cfg:   NewConfig(opts...),
		rules: make(map[Kind]RuleFunc),
	}
	r.Override(KindCollection, collectionRule)
	r.Override(KindFence, fenceRule)
	return r
}

// Config returns the effective configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Override installs the rule returned by wrap for kind. wrap receives the
// rule it replaces, which is host rendering for kinds without a rule.
func (r *Renderer) Override(kind Kind, wrap func(prev RuleFunc) RuleFunc) {
	prev := r.rules[kind]
	if prev == nil {
		prev = hostRule
	}
	r.rules[kind] = wrap(prev)
}

// Parse tokenizes src and applies Rewrite.
func (r *Renderer) Parse(src []byte) []Token {
	return Rewrite(FromHost(r.host.Parse(src)), r.cfg)
}

// Render parses src and writes its HTML to w.
func (r *Renderer) Render(w io.Writer, src []byte) error {
	return r.RenderTokens(w, r.Parse(src))
}

// RenderTokens writes the HTML of tokens to w using a fresh Pass.
func (r *Renderer) RenderTokens(w io.Writer, tokens []Token) error {
	out, err := r.RenderTokensToString(tokens)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderTokensToString renders tokens using a fresh Pass. Rule output
// replaces its token as raw HTML and the resulting stream is rendered by
// the host in one call, so block tokens always see their neighbours.
func (r *Renderer) RenderTokensToString(tokens []Token) (string, error) {
	env := &Env{Pass: NewPass(), Config: r.cfg, host: r.host}
	stream := make([]markdown.Token, 0, len(tokens))
	for idx, tok := range tokens {
		rule := r.rules[tok.Kind]
		if rule == nil {
			if tok.Host != nil {
				stream = append(stream, tok.Host)
			}
			continue
		}
		s, err := rule(tokens, idx, env)
		if err != nil {
			return "", fmt.Errorf("mdtabs: render token %d: %w", idx, err)
		}
		if s == "" {
			continue
		}
		raw := &markdown.HTMLBlock{Content: s}
		if tok.Host != nil {
			raw.Lvl = tok.Host.Level()
		}
		stream = append(stream, raw)
	}
	return env.RenderHost(stream...), nil
}

func hostRule(tokens []Token, idx int, env *Env) (string, error) {
	if tokens[idx].Host == nil {
		return "", nil
	}
	return env.RenderHost(tokens[idx].Host), nil
}

func collectionRule(prev RuleFunc) RuleFunc {
	return func(tokens []Token, idx int, env *Env) (string, error) {
		tok := tokens[idx]
		switch tok.Sub {
		case SubGroupStart:
			if idx+1 >= len(tokens) || tokens[idx+1].Sub != SubGroupTabs {
				return "", ErrMissingTabs
			}
			return GroupStartHTML(tok.Info, tokens[idx+1].Content), nil
		case SubGroupTabs:
			if idx == 0 || tokens[idx-1].Sub != SubGroupStart {
				return "", ErrOrphanTabs
			}
			return "", nil
		case SubGroupEnd:
			return tok.Content + "\n", nil
		}
		return prev(tokens, idx, env)
	}
}

func fenceRule(prev RuleFunc) RuleFunc {
	return func(tokens []Token, idx int, env *Env) (string, error) {
		code, err := prev(tokens, idx, env)
		if err != nil {
			return "", err
		}
		id := BlockID(idx)
		meta, ok := ParseFenceInfo(tokens[idx].Info)
		if !ok {
			return env.Config.OpenStandaloneBlock(id) + code + CloseBlock(), nil
		}
		active := env.Pass.Enter(meta.Group)
		env.Config.Logger.WithField("group", env.Pass.CurrentGroup()).WithField("tab", meta.Tab).
			Debugf("fence %s new group=%t", id, env.Pass.IsNewGroup())
		return env.Config.OpenGroupedBlock(meta, active, id) + code + CloseBlock(), nil
	}
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader   io.Reader
	Writer   io.Writer
	Host     *markdown.Markdown
	Options  []Option
	Renderer *Renderer
}

// Render reads Markdown from Reader and writes HTML to Writer. The input is
// passed through Prepare first.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: Writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	src, err = Prepare(src)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r := req.Renderer
	if r == nil {
		r = NewRenderer(req.Host, req.Options...)
	}
	return r.Render(req.Writer, src)
}
