package mdtabs

import (
	"regexp"
	"strings"
)

var (
	openMarkerRe  = regexp.MustCompile(`\{\{\s*group="([^"]+)"\s+tabs=\[([^\]]*)\]\s*\}\}`)
	closeMarkerRe = regexp.MustCompile(`^\{\{\s*/group\s*\}\}$`)
	fenceGroupRe  = regexp.MustCompile(`\bgroup="([^"]*)"`)
	fenceTabRe    = regexp.MustCompile(`\btab="([^"]*)"`)
)

// Group is a named set of tab labels declared by an open marker.
type Group struct {
	Name string
	Tabs []string
}

// ParseOpenMarker reports whether content contains an open marker and
// returns the group it declares. The tab list is parsed best-effort and may
// be empty.
func ParseOpenMarker(content string) (Group, bool) {
	m := openMarkerRe.FindStringSubmatch(content)
	if m == nil {
		return Group{}, false
	}
	return Group{Name: m[1], Tabs: parseTabs(m[2])}, true
}

// IsCloseMarker reports whether content is a close marker.
func IsCloseMarker(content string) bool {
	return closeMarkerRe.MatchString(strings.TrimSpace(content))
}

func parseTabs(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	tabs := make([]string, 0, len(parts))
	for _, part := range parts {
		label := strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(part), `"`, ""))
		if label == "" {
			continue
		}
		tabs = append(tabs, label)
	}
	return tabs
}

// FenceMeta is the group/tab pair carried by a fence info string, in
// normalized form.
type FenceMeta struct {
	Group string
	Tab   string
}

// ParseFenceInfo extracts group="..." and tab="..." from a fence info string.
// It reports false unless both are present and non-empty.
func ParseFenceInfo(info string) (FenceMeta, bool) {
	g := fenceGroupRe.FindStringSubmatch(info)
	t := fenceTabRe.FindStringSubmatch(info)
	if g == nil || t == nil || g[1] == "" || t[1] == "" {
		return FenceMeta{}, false
	}
	return FenceMeta{Group: NormalizeName(g[1]), Tab: NormalizeName(t[1])}, true
}

// NormalizeName lowercases name and replaces its first space with a dash.
// Later spaces are kept.
func NormalizeName(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "-", 1)
}
