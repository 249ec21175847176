// Package text loads fonts and turns characters into coverage masks for
// the ink compositor.
//
//   - FontSource: a parsed TTF/OTF font; rasterizes one character into a
//     size x size em-box mask (golang.org/x/image) and answers coverage
//     queries from the cmap (go-text/typesetting)
//   - Fallback: tries several sources in order, e.g. a calligraphic font
//     backed by a broad CJK font
//   - StripNewlines, SplitLines, Chunk, Prepare: preparing a text stream
//     for column layout
//
// Both FontSource and Fallback satisfy ink.Rasterizer.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("brush.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	mask, err := source.Rasterize('永', 180)
package text
