package mdtabs

import "gitlab.com/golang-commonmark/markdown"

// Rewrite returns tokens with group markers replaced by structural tokens.
//
// An inline token containing an open marker becomes a group-start token
// followed by a group-tabs token holding the rendered tab list. An inline
// token holding a close marker becomes a group-end token. The paragraph
// tokens around a marker are dropped. Every other token is kept in order.
// The input slice is not modified.
func Rewrite(tokens []Token, cfg Config) []Token {
	cfg = cfg.withDefaults()
	out := make([]Token, 0, len(tokens)+2)
	dropClose := false
	for i, tok := range tokens {
		if dropClose {
			dropClose = false
			if _, ok := tok.Host.(*markdown.ParagraphClose); ok {
				continue
			}
		}
		if tok.Kind != KindInline {
			out = append(out, tok)
			continue
		}
		if g, ok := ParseOpenMarker(tok.Content); ok {
			group := g
			cfg.Logger.WithField("token", i).WithField("group", g.Name).
				Debugf("code group opened with %d tabs", len(g.Tabs))
			out, dropClose = unwrapParagraph(out)
			out = append(out,
				Token{
					Kind:    KindCollection,
					Sub:     SubGroupStart,
					Info:    GroupInfo(g.Name),
					Content: groupStartComment,
					Group:   &group,
				},
				Token{
					Kind:    KindCollection,
					Sub:     SubGroupTabs,
					Info:    "group-tabs",
					Content: cfg.TabListHTML(g),
					Group:   &group,
				},
			)
			continue
		}
		if IsCloseMarker(tok.Content) {
			cfg.Logger.WithField("token", i).Debug("code group closed")
			out, dropClose = unwrapParagraph(out)
			out = append(out, Token{
				Kind:    KindCollection,
				Sub:     SubGroupEnd,
				Info:    "end-group",
				Content: groupEndComment,
			})
			continue
		}
		out = append(out, tok)
	}
	return out
}

// unwrapParagraph removes a trailing paragraph-open token and reports
// whether the matching close should be skipped.
func unwrapParagraph(out []Token) ([]Token, bool) {
	if n := len(out); n > 0 {
		if _, ok := out[n-1].Host.(*markdown.ParagraphOpen); ok {
			return out[:n-1], true
		}
	}
	return out, false
}
