// Package goldmarktabs provides grouped code tabs as a goldmark extension.
//
// An AST transformer replaces marker paragraphs with GroupStart, GroupTabs
// and GroupEnd nodes, and a node renderer wraps fenced code blocks the same
// way mdtabs.Renderer does:
//
//	md := goldmark.New(goldmark.WithExtensions(goldmarktabs.New()))
//	if err := md.Convert(src, &buf); err != nil {
//		return err
//	}
//
// Fence contents are still rendered by goldmark's HTML renderer, or by the
// renderer given with WithFallback or WithHighlighting. Render-pass state is
// attached to each parsed document, so a configured goldmark.Markdown can
// convert documents concurrently.
package goldmarktabs
