package goldmarktabs

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"pkt.systems/mdtabs"
)

const demoDoc = "{{ group=\"demo\" tabs=[\"JS\",\"Go\"] }}\n" +
	"\n" +
	"```js group=\"demo\" tab=\"JS\"\n" +
	"console.log(1)\n" +
	"```\n" +
	"\n" +
	"```go group=\"demo\" tab=\"Go\"\n" +
	"fmt.Println(1)\n" +
	"```\n" +
	"\n" +
	"{{ /group }}\n"

func convert(t *testing.T, md goldmark.Markdown, src string) string {
	t.Helper()
	var out bytes.Buffer
	if err := md.Convert([]byte(src), &out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	return out.String()
}

func TestConvertGroup(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	out := convert(t, md, demoDoc)
	want := []string{
		"<!-- Start group=\"demo\" -->\n",
		`<nav class="tab"><ul><li class="code-tab tab-active" data-group="demo" data-code-index="0">JS</li>` +
			`<li class="code-tab " data-group="demo" data-code-index="1">Go</li></ul></nav>` + "\n",
		`<div class="code-block demo-js code-active" data-code-group="demo" data-code-id="code-0">` +
			`<i class="fa-solid fa-copy code-block-copy" onclick="copyCode('code-0')"></i>` +
			`<pre><code class="language-js">console.log(1)`,
		"</code></pre>\n</div>\n",
		`<div class="code-block demo-go " data-code-group="demo" data-code-id="code-1">`,
		"<!-- End Group -->\n",
	}
	last := -1
	for _, w := range want {
		i := strings.Index(out, w)
		if i < 0 {
			t.Fatalf("missing %q in output:\n%s", w, out)
		}
		if i < last {
			t.Fatalf("%q out of order in output:\n%s", w, out)
		}
		last = i
	}
	if strings.Contains(out, "<p>{{") {
		t.Fatalf("marker paragraph leaked into output:\n%s", out)
	}
}

func TestConvertStandaloneBlock(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	out := convert(t, md, "```sh\nls\n```\n")
	want := `<div data-code-id="code-0" style="position: relative">` +
		`<i class="fa-solid fa-copy code-block-copy" onclick="copyCode('code-0')"></i>` +
		`<pre><code class="language-sh">ls`
	if !strings.Contains(out, want) {
		t.Fatalf("missing standalone wrapper in output:\n%s", out)
	}
}

func TestConvertNewGroupAfterSwitch(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	src := "```js group=\"G\" tab=\"A\"\na\n```\n\n" +
		"```js group=\"G\" tab=\"B\"\nb\n```\n\n" +
		"```go group=\"H\" tab=\"X\"\nx\n```\n"
	out := convert(t, md, src)
	for _, w := range []string{
		`class="code-block g-a code-active"`,
		`class="code-block g-b "`,
		`class="code-block h-x code-active"`,
	} {
		if !strings.Contains(out, w) {
			t.Fatalf("missing %q in output:\n%s", w, out)
		}
	}
}

func TestConvertUsesTabOptions(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New(WithTabOptions(
		mdtabs.WithActiveTabClass("selected"),
		mdtabs.WithActiveCodeClass("visible"),
	))))
	out := convert(t, md, demoDoc)
	if !strings.Contains(out, `<li class="code-tab selected"`) || !strings.Contains(out, `code-block demo-js visible"`) {
		t.Fatalf("configured classes not used:\n%s", out)
	}
}

func TestConvertWithHighlighting(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New(WithHighlighting(highlighting.WithStyle("monokai")))))
	out := convert(t, md, demoDoc)
	if !strings.Contains(out, `<div class="code-block demo-js code-active"`) || !strings.Contains(out, "console") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConvertFreshStatePerDocument(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	first := convert(t, md, demoDoc)
	second := convert(t, md, demoDoc)
	if first != second {
		t.Fatalf("expected identical output:\n%s\n---\n%s", first, second)
	}
}

func TestConvertConcurrent(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	want := convert(t, md, demoDoc)
	var wg sync.WaitGroup
	results := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out bytes.Buffer
			if err := md.Convert([]byte(demoDoc), &out); err != nil {
				results <- err.Error()
				return
			}
			results <- out.String()
		}()
	}
	wg.Wait()
	close(results)
	for got := range results {
		if got != want {
			t.Fatalf("concurrent convert diverged:\n%s", got)
		}
	}
}

func TestTransformerReplacesMarkerParagraphs(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	doc := md.Parser().Parse(textReader(demoDoc))
	var kinds []ast.NodeKind
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		kinds = append(kinds, n.Kind())
	}
	want := []ast.NodeKind{KindGroupStart, KindGroupTabs, ast.KindFencedCodeBlock, ast.KindFencedCodeBlock, KindGroupEnd}
	if len(kinds) != len(want) {
		t.Fatalf("expected kinds %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected kinds %v, got %v", want, kinds)
		}
	}
	start := doc.FirstChild().(*GroupStart)
	if start.Group.Name != "demo" || strings.Join(start.Group.Tabs, ",") != "JS,Go" {
		t.Fatalf("unexpected group: %+v", start.Group)
	}
}

func TestRenderAdjacencyErrors(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	g := mdtabs.Group{Name: "G", Tabs: []string{"A"}}

	missing := ast.NewDocument()
	missing.AppendChild(missing, NewGroupStart(g))
	var out bytes.Buffer
	if err := md.Renderer().Render(&out, nil, missing); !errors.Is(err, mdtabs.ErrMissingTabs) {
		t.Fatalf("expected ErrMissingTabs, got %v", err)
	}

	orphan := ast.NewDocument()
	orphan.AppendChild(orphan, NewGroupTabs(g, ""))
	out.Reset()
	if err := md.Renderer().Render(&out, nil, orphan); !errors.Is(err, mdtabs.ErrOrphanTabs) {
		t.Fatalf("expected ErrOrphanTabs, got %v", err)
	}
}

// upperWriter upper-cases raw code lines so tests can see which writer ran.
type upperWriter struct {
	html.Writer
}

func (w upperWriter) RawWrite(out util.BufWriter, source []byte) {
	w.Writer.RawWrite(out, bytes.ToUpper(source))
}

func TestConvertForwardsRendererOptionsToFence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ext  *Extender
	}{
		{name: "default fence renderer", ext: New()},
		{name: "html options", ext: New(WithHTMLOptions(html.WithXHTML()))},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			md := goldmark.New(
				goldmark.WithExtensions(tc.ext),
				goldmark.WithRendererOptions(html.WithWriter(upperWriter{html.DefaultWriter})),
			)
			out := convert(t, md, demoDoc)
			if !strings.Contains(out, "CONSOLE.LOG(1)") || !strings.Contains(out, "FMT.PRINTLN(1)") {
				t.Fatalf("renderer options did not reach the fence renderer:\n%s", out)
			}
		})
	}
}

func TestConvertEscapesGroupNameInComment(t *testing.T) {
	t.Parallel()
	md := goldmark.New(goldmark.WithExtensions(New()))
	out := convert(t, md, "{{ group=\"x --> <b>\" tabs=[\"A\"] }}\n\n{{ /group }}\n")
	if !strings.Contains(out, "<!-- Start group=\"x --&gt; &lt;b&gt;\" -->\n") {
		t.Fatalf("group name not escaped in comment:\n%s", out)
	}
	if strings.Count(out, "-->") != 2 {
		t.Fatalf("expected only the two comment terminators:\n%s", out)
	}
}
