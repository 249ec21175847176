// Package ink renders brush-written East-Asian calligraphy one character at
// a time.
//
// # Overview
//
// Each character passes through two models and one compositor. Ordinary
// characters get small rotation, shear and scale variation weighted by
// their place in the column. Structurally ambiguous characters (by default
// 之) are written in one of three habitual states with segment-level
// stickiness, mirroring and shear de-biasing. The compositor then deforms
// the rasterized glyph, erodes it along paper fibres like a dry brush,
// spreads a wet halo, and pastes it onto the page.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ink"
//	    "github.com/gogpu/ink/text"
//	)
//
//	src, _ := text.NewFontSource(fontData)
//	b, _ := ink.NewBrush(ink.WithConfig(ink.ExpressiveConfig()))
//	canvas := ink.NewCanvas(400, 400, ink.RicePaper)
//
//	ctx := ink.GlyphContext{Char: '墨'}
//	b.DrawChar(canvas, ink.Pt(200, 200), ink.Glyph{
//	    Char:        '墨',
//	    Size:        180,
//	    Fill:        ink.InkBlack,
//	    Deformation: b.Deform(ctx),
//	    Ink:         ink.Ink{Dryness: 0.3, BlurSigma: 0.8},
//	}, src)
//
//	canvas.SavePNG("out.png")
//
// # Determinism
//
// A Brush owns one random stream. Every decision (drift, variation, glyph
// states, erosion offsets, jitter) draws from it in call order, so the same
// seed and the same sequence of calls produce identical pixels. The paper
// fibres come from a separate field seeded with the same value unless
// WithNoiseSeed says otherwise.
//
// # Layout
//
// Page layout is the caller's job. The caller resets a DriftState per
// column, steps it once per character and adds its Offset to every anchor;
// BeginSegment gives an offset shared by one segment.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation in degrees, positive is counter-clockwise on screen
package ink
