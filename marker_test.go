package mdtabs

import (
	"reflect"
	"testing"
)

func TestParseOpenMarker(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		ok      bool
		want    Group
	}{
		{
			name:    "well formed",
			content: `{{ group="G" tabs=["A","B","C"] }}`,
			ok:      true,
			want:    Group{Name: "G", Tabs: []string{"A", "B", "C"}},
		},
		{
			name:    "tight and padded",
			content: `{{group="install"   tabs=[ "npm" ,  "Go mod" ]}}`,
			ok:      true,
			want:    Group{Name: "install", Tabs: []string{"npm", "Go mod"}},
		},
		{
			name:    "embedded in text",
			content: `see {{ group="x" tabs=["one"] }} here`,
			ok:      true,
			want:    Group{Name: "x", Tabs: []string{"one"}},
		},
		{
			name:    "empty tab list",
			content: `{{ group="x" tabs=[] }}`,
			ok:      true,
			want:    Group{Name: "x"},
		},
		{
			name:    "garbage tab list",
			content: `{{ group="x" tabs=[,"", ,] }}`,
			ok:      true,
			want:    Group{Name: "x"},
		},
		{
			name:    "unquoted labels",
			content: `{{ group="x" tabs=[a, b] }}`,
			ok:      true,
			want:    Group{Name: "x", Tabs: []string{"a", "b"}},
		},
		{
			name:    "missing tabs",
			content: `{{ group="x" }}`,
		},
		{
			name:    "unquoted group",
			content: `{{ group=x tabs=["a"] }}`,
		},
		{
			name:    "plain text",
			content: "Hello world",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseOpenMarker(tc.content)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if !ok {
				return
			}
			if got.Name != tc.want.Name {
				t.Fatalf("expected group %q, got %q", tc.want.Name, got.Name)
			}
			if len(got.Tabs) != len(tc.want.Tabs) || (len(got.Tabs) > 0 && !reflect.DeepEqual(got.Tabs, tc.want.Tabs)) {
				t.Fatalf("expected tabs %q, got %q", tc.want.Tabs, got.Tabs)
			}
		})
	}
}

func TestIsCloseMarker(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"{{ /group }}":      true,
		"{{/group}}":        true,
		"  {{   /group  }} ": true,
		"{{ /group }} tail": false,
		"{{ group }}":       false,
		"/group":            false,
	}
	for input, want := range cases {
		if got := IsCloseMarker(input); got != want {
			t.Fatalf("IsCloseMarker(%q)=%v want %v", input, got, want)
		}
	}
}

func TestParseFenceInfo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		info string
		ok   bool
		want FenceMeta
	}{
		{info: `js group="demo" tab="JS"`, ok: true, want: FenceMeta{Group: "demo", Tab: "js"}},
		{info: `tab="Go Mod" group="My Group" go`, ok: true, want: FenceMeta{Group: "my-group", Tab: "go-mod"}},
		{info: `sh group="A B C" tab="x"`, ok: true, want: FenceMeta{Group: "a-b c", Tab: "x"}},
		{info: `js group="demo"`},
		{info: `js tab="JS"`},
		{info: `js group="" tab="JS"`},
		{info: `js datatab="x" group="demo"`},
		{info: ""},
	}
	for _, tc := range tests {
		got, ok := ParseFenceInfo(tc.info)
		if ok != tc.ok {
			t.Fatalf("ParseFenceInfo(%q) ok=%v want %v", tc.info, ok, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseFenceInfo(%q)=%+v want %+v", tc.info, got, tc.want)
		}
	}
}

func TestNormalizeNameReplacesFirstSpaceOnly(t *testing.T) {
	t.Parallel()
	if got := NormalizeName("Hello Big World"); got != "hello-big world" {
		t.Fatalf("expected %q, got %q", "hello-big world", got)
	}
}
