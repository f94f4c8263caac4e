// Package mdtabs renders grouped, tabbed code samples in Markdown to HTML.
//
// Documents mark a group of alternative code samples with an open marker,
// tag each fenced block with the group and tab it belongs to, and close the
// group with a close marker:
//
//	{{ group="install" tabs=["npm", "Go"] }}
//
//	```sh group="install" tab="npm"
//	npm install thing
//	```
//
//	```sh group="install" tab="Go"
//	go get thing
//	```
//
//	{{ /group }}
//
// Rendering runs in two steps over the token stream produced by the
// golang-commonmark tokenizer:
//   - Rewrite replaces marker paragraphs with structural tokens that carry
//     the tab navigation markup
//   - Renderer overrides how structural and fence tokens render, wrapping
//     each fence in a container with group/tab classes and a copy button
//
// The first block of each group is marked active. That decision depends on
// which group was rendered last, so every render owns a fresh Pass and one
// Renderer can be used from many goroutines.
//
// Example:
//
//	err := mdtabs.Render(mdtabs.RenderRequest{
//		Reader: strings.NewReader(src),
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The goldmarktabs subpackage provides the same behaviour as a goldmark
// extension.
package mdtabs
