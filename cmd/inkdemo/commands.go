package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/text"
)

// style is the page look shared by every sample.
type style struct {
	size  int
	paper ink.Color
	fill  ink.Color
}

func newDrynessCmd(opts *options) *cobra.Command {
	var char, out string
	cmd := &cobra.Command{
		Use:   "dryness",
		Short: "Render one character at increasing brush dryness",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := singleRune(char)
			if err != nil {
				return err
			}
			b, r, st, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			inks := []ink.Ink{{Dryness: 0.1}, {Dryness: 0.2}, {Dryness: 0.3}, {Dryness: 0.4}, {Dryness: 0.5}}
			c, err := renderStrip(b, r, st, ch, inks)
			if err != nil {
				return err
			}
			return opts.save(c, out)
		},
	}
	cmd.Flags().StringVar(&char, "char", "墨", "character to write")
	cmd.Flags().StringVarP(&out, "out", "o", "dryness.png", "output PNG")
	return cmd
}

func newBlurCmd(opts *options) *cobra.Command {
	var (
		char    string
		out     string
		dryness float64
	)
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Render one character with increasingly wet ink",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := singleRune(char)
			if err != nil {
				return err
			}
			b, r, st, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			var inks []ink.Ink
			for _, sigma := range []float64{0, 0.5, 1, 2, 3} {
				inks = append(inks, ink.Ink{Dryness: dryness, BlurSigma: sigma})
			}
			c, err := renderStrip(b, r, st, ch, inks)
			if err != nil {
				return err
			}
			return opts.save(c, out)
		},
	}
	cmd.Flags().StringVar(&char, "char", "墨", "character to write")
	cmd.Flags().Float64Var(&dryness, "dryness", 0, "brush dryness for every panel")
	cmd.Flags().StringVarP(&out, "out", "o", "blur.png", "output PNG")
	return cmd
}

func newColumnCmd(opts *options) *cobra.Command {
	var (
		body    string
		out     string
		segment int
		dryEnd  float64
		wet     ink.Ink
	)
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Write a vertical column with drift and glyph variation",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, r, st, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dry-end") {
				dryEnd = wet.Dryness
			}
			c, err := renderColumn(b, r, st, body, segment, wet, dryEnd)
			if err != nil {
				return err
			}
			return opts.save(c, out)
		},
	}
	cmd.Flags().StringVar(&body, "text", "之乎者也之", "text to write")
	cmd.Flags().IntVar(&segment, "segment", 4, "characters per segment")
	cmd.Flags().Float64Var(&wet.Dryness, "dryness", 0.2, "brush dryness after each dip")
	cmd.Flags().Float64Var(&dryEnd, "dry-end", 0.2, "brush dryness at the end of each segment")
	cmd.Flags().Float64Var(&wet.BlurSigma, "blur", 0.8, "ink halo sigma")
	cmd.Flags().StringVarP(&out, "out", "o", "column.png", "output PNG")
	return cmd
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--char %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// renderStrip writes ch once per ink, left to right.
func renderStrip(b *ink.Brush, r ink.Rasterizer, st style, ch rune, inks []ink.Ink) (*ink.Canvas, error) {
	cell := st.size * 3 / 2
	c := ink.NewCanvas(cell*len(inks), cell, st.paper)
	for i, wet := range inks {
		ctx := ink.GlyphContext{Char: ch, Row: 2}
		g := ink.Glyph{
			Char:        ch,
			Size:        st.size,
			Fill:        st.fill,
			Deformation: b.Deform(ctx),
			Ink:         wet,
		}
		if err := b.DrawChar(c, ink.Pt(cell*i+cell/2, cell/2), g, r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// renderColumn writes body top to bottom. The text is split into segments
// of segmentLen characters; each segment shares one offset and its own
// multi-state memory, and the column drifts one step per character. The
// brush is dipped at the start of each segment and dries from wet.Dryness
// to dryEnd over it.
func renderColumn(b *ink.Brush, r ink.Rasterizer, st style, body string, segmentLen int, wet ink.Ink, dryEnd float64) (*ink.Canvas, error) {
	runes := []rune(text.StripNewlines(text.Prepare(body)))
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: empty text", ink.ErrInvalidInput)
	}
	segments, err := text.Chunk(string(runes), segmentLen)
	if err != nil {
		return nil, err
	}

	step := st.size * 11 / 10
	margin := st.size
	c := ink.NewCanvas(st.size+2*margin, step*len(runes)+2*margin-(step-st.size), st.paper)
	x := c.Width() / 2

	drift := ink.NewDriftState()
	row := 0
	for si, seg := range segments {
		offset := b.BeginSegment()
		chars := []rune(seg)
		dryness := depletion(wet.Dryness, dryEnd, len(chars))
		for i, ch := range chars {
			drift = b.StepDrift(drift)

			ctx := ink.GlyphContext{
				Char:     ch,
				Prev:     neighbour(runes, row-1),
				Next:     neighbour(runes, row+1),
				Row:      row,
				Segment:  si,
				Position: relativePosition(i, len(chars)),
			}
			g := ink.Glyph{
				Char:        ch,
				Size:        st.size,
				Fill:        st.fill,
				Deformation: b.Deform(ctx),
				Ink:         ink.Ink{Dryness: dryness[i], BlurSigma: wet.BlurSigma},
			}
			at := ink.Pt(x, margin+st.size/2+row*step).Add(offset).Add(drift.Offset())
			if err := b.DrawChar(c, at, g, r); err != nil {
				return nil, err
			}
			row++
		}
	}
	return c, nil
}

func neighbour(runes []rune, i int) rune {
	if i < 0 || i >= len(runes) {
		return 0
	}
	return runes[i]
}

func relativePosition(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
