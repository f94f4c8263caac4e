package mdtabs

import (
	"fmt"
	"io"
)

// Diagnostic reports a group that will not render the way its markers and
// fences suggest. Token is the index in the rewritten stream.
type Diagnostic struct {
	Token   int
	Group   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Group == "" {
		return fmt.Sprintf("token %d: %s", d.Token, d.Message)
	}
	return fmt.Sprintf("token %d: group %q: %s", d.Token, d.Group, d.Message)
}

type openGroup struct {
	start int
	group *Group
	tabs  map[string]string
	seen  map[string]bool
}

// CheckGroups reports groups whose markers, tab lists and tagged fences
// disagree. Rendering does not depend on the result.
func CheckGroups(tokens []Token) []Diagnostic {
	var (
		diags []Diagnostic
		open  *openGroup
	)
	report := func(idx int, group, format string, args ...interface{}) {
		diags = append(diags, Diagnostic{Token: idx, Group: group, Message: fmt.Sprintf(format, args...)})
	}
	closeGroup := func(idx int) {
		for _, label := range open.group.Tabs {
			if !open.seen[NormalizeName(label)] {
				report(idx, open.group.Name, "tab %q has no code block", label)
			}
		}
		open = nil
	}
	for idx, tok := range tokens {
		switch {
		case tok.Kind == KindCollection && tok.Sub == SubGroupStart && tok.Group != nil:
			if open != nil {
				report(idx, open.group.Name, "not closed before group %q opens", tok.Group.Name)
				closeGroup(idx)
			}
			open = &openGroup{start: idx, group: tok.Group, tabs: map[string]string{}, seen: map[string]bool{}}
			for _, label := range tok.Group.Tabs {
				open.tabs[NormalizeName(label)] = label
			}
		case tok.Kind == KindCollection && tok.Sub == SubGroupEnd:
			if open == nil {
				report(idx, "", "close marker without an open group")
				continue
			}
			closeGroup(idx)
		case tok.Kind == KindFence:
			meta, ok := ParseFenceInfo(tok.Info)
			if !ok {
				continue
			}
			switch {
			case open == nil:
				report(idx, meta.Group, "block for tab %q outside group markers", meta.Tab)
			case meta.Group != NormalizeName(open.group.Name):
				report(idx, open.group.Name, "block names group %q", meta.Group)
			case open.tabs[meta.Tab] == "":
				report(idx, open.group.Name, "tab %q is not declared", meta.Tab)
			default:
				open.seen[meta.Tab] = true
			}
		}
	}
	if open != nil {
		report(open.start, open.group.Name, "never closed")
	}
	return diags
}

// WriteDiagnostics writes one line per diagnostic.
func WriteDiagnostics(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}
