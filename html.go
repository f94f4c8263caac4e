package mdtabs

import (
	"html"
	"strconv"
	"strings"
)

const (
	groupStartComment = "<!-- Start Group -->"
	groupEndComment   = "<!-- End Group -->"
	blockClose        = "</div>\n"
)

// TabListHTML renders the list items of g's tab navigation. Only the first
// item carries the active tab class.
func (c Config) TabListHTML(g Group) string {
	var b strings.Builder
	name := html.EscapeString(g.Name)
	for i, tab := range g.Tabs {
		active := ""
		if i == 0 {
			active = c.ActiveTabClass
		}
		b.WriteString(`<li class="code-tab `)
		b.WriteString(active)
		b.WriteString(`" data-group="`)
		b.WriteString(name)
		b.WriteString(`" data-code-index="`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(tab))
		b.WriteString("</li>")
	}
	return b.String()
}

// GroupInfo formats the info echoed in a group's start comment. The name is
// escaped so it cannot terminate the comment.
func GroupInfo(name string) string {
	return `group="` + html.EscapeString(name) + `"`
}

// GroupStartHTML renders the start comment and the tab navigation around
// the list items in tabList. info is echoed in the comment.
func GroupStartHTML(info, tabList string) string {
	return "<!-- Start " + info + " -->\n" +
		`<nav class="tab"><ul>` + tabList + "</ul></nav>\n"
}

// GroupEndHTML renders the comment closing a group.
func GroupEndHTML() string {
	return groupEndComment + "\n"
}

// CopyButtonHTML renders the copy affordance for the block with the given id.
func (c Config) CopyButtonHTML(id string) string {
	return "<" + c.CopyButtonTag + ` class="` + c.CopyButtonIconClasses + " " + c.CopyButtonContainerClass +
		`" onclick="copyCode('` + id + `')"></` + c.CopyButtonTag + ">"
}

// OpenGroupedBlock renders the opening of a wrapper for a block that belongs
// to meta's group, including its copy affordance.
func (c Config) OpenGroupedBlock(meta FenceMeta, active bool, id string) string {
	activeClass := ""
	if active {
		activeClass = c.ActiveCodeClass
	}
	g := html.EscapeString(meta.Group)
	t := html.EscapeString(meta.Tab)
	return `<div class="code-block ` + g + "-" + t + " " + activeClass +
		`" data-code-group="` + g + `" data-code-id="` + id + `">` + c.CopyButtonHTML(id)
}

// OpenStandaloneBlock renders the opening of a wrapper for a block outside
// any group.
func (c Config) OpenStandaloneBlock(id string) string {
	return `<div data-code-id="` + id + `" style="position: relative">` + c.CopyButtonHTML(id)
}

// CloseBlock closes a wrapper opened by OpenGroupedBlock or OpenStandaloneBlock.
func CloseBlock() string {
	return blockClose
}
