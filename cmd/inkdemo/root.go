package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/text"
)

// options are the flags shared by every command.
type options struct {
	fonts   []string
	config  string
	seed    int64
	size    int
	paper   string
	color   string
	verbose bool

	logger *charmlog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "inkdemo",
		Short:        "Render brush calligraphy samples",
		Long:         `inkdemo writes PNG samples of brush calligraphy: dry-brush and wet-ink strips for a single character, or a whole column with drift and glyph variation.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level)
			ink.SetLogger(slog.New(opts.logger))
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&opts.fonts, "font", nil, "font file; repeat to add fallbacks (required)")
	pf.StringVar(&opts.config, "config", "", "TOML brush configuration")
	pf.Int64Var(&opts.seed, "seed", 42, "session seed (overrides the config file)")
	pf.IntVar(&opts.size, "size", 180, "glyph size in pixels")
	pf.StringVar(&opts.paper, "paper", ink.RicePaper.String(), "paper colour")
	pf.StringVar(&opts.color, "ink", ink.InkBlack.String(), "ink colour")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	_ = root.MarkPersistentFlagRequired("font")

	root.AddCommand(newDrynessCmd(opts))
	root.AddCommand(newBlurCmd(opts))
	root.AddCommand(newColumnCmd(opts))
	return root
}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "inkdemo",
	})
	styles := charmlog.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B4513"))
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	styles.Values["err"] = lipgloss.NewStyle().Bold(true)
	logger.SetStyles(styles)
	return logger
}

// brush builds the session from the config file and flags.
func (o *options) brush(cmd *cobra.Command) (*ink.Brush, error) {
	cfg, err := loadConfig(o.config)
	if err != nil {
		return nil, err
	}
	if o.config == "" || cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	return ink.NewBrush(ink.WithConfig(cfg))
}

// rasterizer loads the font chain.
func (o *options) rasterizer() (ink.Rasterizer, error) {
	sources := make([]text.Source, 0, len(o.fonts))
	for _, path := range o.fonts {
		s, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("font loaded", "path", path, "family", s.Name())
		sources = append(sources, s)
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return text.NewFallback(sources...)
}

func (o *options) colours() (paper, fill ink.Color, err error) {
	if paper, err = ink.ParseHex(o.paper); err != nil {
		return paper, fill, fmt.Errorf("--paper: %w", err)
	}
	if fill, err = ink.ParseHex(o.color); err != nil {
		return paper, fill, fmt.Errorf("--ink: %w", err)
	}
	return paper, fill, nil
}

func (o *options) save(c *ink.Canvas, path string) error {
	if err := c.SavePNG(path); err != nil {
		return err
	}
	o.logger.Info("saved", "path", path, "width", c.Width(), "height", c.Height())
	return nil
}

// setup resolves everything a command needs before rendering.
func (o *options) setup(cmd *cobra.Command) (*ink.Brush, ink.Rasterizer, style, error) {
	b, err := o.brush(cmd)
	if err != nil {
		return nil, nil, style{}, err
	}
	r, err := o.rasterizer()
	if err != nil {
		return nil, nil, style{}, err
	}
	paper, fill, err := o.colours()
	if err != nil {
		return nil, nil, style{}, err
	}
	if o.size <= 0 || o.size > ink.MaxGlyphSize {
		return nil, nil, style{}, fmt.Errorf("--size %d outside [1, %d]", o.size, ink.MaxGlyphSize)
	}
	return b, r, style{size: o.size, paper: paper, fill: fill}, nil
}
