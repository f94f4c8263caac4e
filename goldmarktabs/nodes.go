package goldmarktabs

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	"pkt.systems/mdtabs"
)

var (
	// KindGroupStart is the kind of GroupStart nodes.
	KindGroupStart = ast.NewNodeKind("CodeGroupStart")
	// KindGroupTabs is the kind of GroupTabs nodes.
	KindGroupTabs = ast.NewNodeKind("CodeGroupTabs")
	// KindGroupEnd is the kind of GroupEnd nodes.
	KindGroupEnd = ast.NewNodeKind("CodeGroupEnd")
)

// GroupStart replaces an open marker paragraph.
type GroupStart struct {
	ast.BaseBlock
	Group mdtabs.Group
}

// NewGroupStart returns a GroupStart for g.
func NewGroupStart(g mdtabs.Group) *GroupStart {
	return &GroupStart{Group: g}
}

// Kind implements ast.Node.
func (n *GroupStart) Kind() ast.NodeKind {
	return KindGroupStart
}

// Dump implements ast.Node.
func (n *GroupStart) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name": n.Group.Name,
		"Tabs": strconv.Itoa(len(n.Group.Tabs)),
	}, nil)
}

// GroupTabs follows a GroupStart and carries the rendered tab list.
type GroupTabs struct {
	ast.BaseBlock
	Group mdtabs.Group
	HTML  string
}

// NewGroupTabs returns a GroupTabs holding the rendered list items.
func NewGroupTabs(g mdtabs.Group, html string) *GroupTabs {
	return &GroupTabs{Group: g, HTML: html}
}

// Kind implements ast.Node.
func (n *GroupTabs) Kind() ast.NodeKind {
	return KindGroupTabs
}

// Dump implements ast.Node.
func (n *GroupTabs) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"HTML": n.HTML}, nil)
}

// GroupEnd replaces a close marker paragraph.
type GroupEnd struct {
	ast.BaseBlock
}

// NewGroupEnd returns a GroupEnd.
func NewGroupEnd() *GroupEnd {
	return &GroupEnd{}
}

// Kind implements ast.Node.
func (n *GroupEnd) Kind() ast.NodeKind {
	return KindGroupEnd
}

// Dump implements ast.Node.
func (n *GroupEnd) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}
