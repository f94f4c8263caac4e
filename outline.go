package mdtabs

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// GroupOutline summarizes one group of a document.
type GroupOutline struct {
	Name   string
	Tabs   []string
	Blocks []BlockOutline
}

// BlockOutline describes a fence tagged with a group and tab.
type BlockOutline struct {
	ID   string
	Tab  string
	Lang string
}

// BuildOutline lists the groups declared in a rewritten token stream in
// document order, with the tagged fences that follow each declaration.
// Fences are attached to the most recent group with the same normalized
// name; tagged fences without a declared group are collected under a group
// without tabs.
func BuildOutline(tokens []Token) []GroupOutline {
	var groups []GroupOutline
	byName := map[string]int{}
	for idx, tok := range tokens {
		switch {
		case tok.Kind == KindCollection && tok.Sub == SubGroupStart && tok.Group != nil:
			byName[NormalizeName(tok.Group.Name)] = len(groups)
			groups = append(groups, GroupOutline{
				Name: tok.Group.Name,
				Tabs: append([]string(nil), tok.Group.Tabs...),
			})
		case tok.Kind == KindFence:
			meta, ok := ParseFenceInfo(tok.Info)
			if !ok {
				continue
			}
			i, seen := byName[meta.Group]
			if !seen {
				i = len(groups)
				byName[meta.Group] = i
				groups = append(groups, GroupOutline{Name: meta.Group})
			}
			groups[i].Blocks = append(groups[i].Blocks, BlockOutline{
				ID:   BlockID(idx),
				Tab:  meta.Tab,
				Lang: fenceLang(tok.Info),
			})
		}
	}
	return groups
}

func fenceLang(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 || strings.Contains(fields[0], "=") {
		return ""
	}
	return fields[0]
}

// WriteOutline writes a plain-text report of groups wrapped to width.
// A width below 20 disables wrapping.
func WriteOutline(w io.Writer, groups []GroupOutline, width int) error {
	if len(groups) == 0 {
		_, err := io.WriteString(w, "no code groups\n")
		return err
	}
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(wrap(fmt.Sprintf("group %q (%d tabs, %d blocks)", g.Name, len(g.Tabs), len(g.Blocks)), width, 0))
		if len(g.Tabs) > 0 {
			b.WriteString(wrap("tabs: "+strings.Join(g.Tabs, ", "), width, 2))
		}
		for _, blk := range g.Blocks {
			line := blk.ID + " " + blk.Tab
			if blk.Lang != "" {
				line += " [" + blk.Lang + "]"
			}
			b.WriteString(wrap(truncateWithEllipsis(line, width-4), width, 4))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func wrap(text string, width int, pad uint) string {
	if width >= 20 {
		text = wordwrap.String(text, width-int(pad))
	}
	return indent.String(text, pad) + "\n"
}

func truncateWithEllipsis(text string, limit int) string {
	if limit < 20 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
