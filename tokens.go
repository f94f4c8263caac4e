package mdtabs

import "gitlab.com/golang-commonmark/markdown"

// Kind classifies tokens for rule dispatch.
type Kind uint8

const (
	// KindOther is any host token without a more specific kind.
	KindOther Kind = iota
	// KindInline is inline text content of a block.
	KindInline
	// KindFence is a fenced code block.
	KindFence
	// KindCollection is a structural token injected by Rewrite.
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindFence:
		return "fence"
	case KindCollection:
		return "code_collection"
	default:
		return "other"
	}
}

// SubKind distinguishes structural tokens.
type SubKind uint8

const (
	SubNone SubKind = iota
	SubGroupStart
	SubGroupTabs
	SubGroupEnd
)

// Token is one entry of a document's token stream.
type Token struct {
	Kind    Kind
	Sub     SubKind
	Content string
	Info    string
	// Group is set on structural tokens.
	Group *Group
	// Host is the tokenizer's token. Nil for structural tokens.
	Host markdown.Token
}

// FromHost wraps the tokenizer's tokens.
func FromHost(tokens []markdown.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		t := Token{Kind: KindOther, Host: tok}
		switch tok := tok.(type) {
		case *markdown.Inline:
			t.Kind = KindInline
			t.Content = tok.Content
		case *markdown.Fence:
			t.Kind = KindFence
			t.Content = tok.Content
			t.Info = tok.Params
		}
		out = append(out, t)
	}
	return out
}
