package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/statable/internal/errors"
)

// RingStyle describes how a loader ring is drawn.
type RingStyle struct {
	Radius     int     // Rows from center to edge; columns are doubled for cell aspect
	Segments   int     // Cells drawn around the circumference
	Accent     string  // Solid color at the end of the gradient (hex)
	Background string  // Color the faded start blends against (hex)
	Fade       float64 // Opacity at the start of the gradient, 0..1
}

// DefaultRingStyle returns the stock red comet ring.
func DefaultRingStyle() RingStyle {
	return RingStyle{
		Radius:     4,
		Segments:   24,
		Accent:     DefaultAccent,
		Background: DefaultBackground,
		Fade:       DefaultFade,
	}
}

// glyphFrames are the inline rotation frames, one per 45°.
var glyphFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Ring renders a rotation angle as a circle of cells whose color runs from a
// faded tail to a solid body, with a head dot at the angle itself.
type Ring struct {
	radius  int
	palette []lipgloss.Style
	head    lipgloss.Style
}

// NewRing precomputes the gradient for style.
func NewRing(style RingStyle) (*Ring, error) {
	if style.Radius < 1 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Ring radius %d is too small", style.Radius),
			"Use a radius of at least 1")
	}
	if style.Segments < 4 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Ring needs at least 4 segments, got %d", style.Segments),
			"Increase loader.segments")
	}

	accent, err := colorful.Hex(style.Accent)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid accent color %q", style.Accent),
			"Use a hex color like #FF3B30")
	}
	bg, err := colorful.Hex(style.Background)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid background color %q", style.Background),
			"Use a hex color like #000000")
	}

	fade := style.Fade
	if math.IsNaN(fade) {
		fade = DefaultFade
	}
	fade = math.Max(0, math.Min(1, fade))
	palette := make([]lipgloss.Style, style.Segments)
	for i := range palette {
		opacity := fade + (1-fade)*float64(i)/float64(style.Segments)
		c := bg.BlendRgb(accent, opacity).Clamped()
		palette[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}

	return &Ring{
		radius:  style.Radius,
		palette: palette,
		head:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent.Hex())).Bold(true),
	}, nil
}

// Size returns the rendered width and height in cells.
func (r *Ring) Size() (width, height int) {
	return 4*r.radius + 1, 2*r.radius + 1
}

// Render draws the ring rotated clockwise by angle degrees. Zero puts the head
// at three o'clock; -90 puts it at twelve.
func (r *Ring) Render(angle float64) string {
	width, height := r.Size()
	grid := make([][]string, height)
	for row := range grid {
		grid[row] = make([]string, width)
		for col := range grid[row] {
			grid[row][col] = " "
		}
	}

	step := 360 / float64(len(r.palette))
	for i, style := range r.palette {
		row, col := r.cell(angle + float64(i)*step)
		grid[row][col] = style.Render(SymbolArc)
	}
	row, col := r.cell(angle)
	grid[row][col] = r.head.Render(SymbolHead)

	lines := make([]string, height)
	for i, cells := range grid {
		lines[i] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}

// Glyph returns a single-cell frame for angle, for inline output.
func (r *Ring) Glyph(angle float64) string {
	return r.head.Render(glyphFrames[octant(angle)])
}

func (r *Ring) cell(deg float64) (row, col int) {
	theta := normalize(deg) * math.Pi / 180
	row = int(math.Round(float64(r.radius) + float64(r.radius)*math.Sin(theta)))
	col = int(math.Round(float64(2*r.radius) + float64(2*r.radius)*math.Cos(theta)))
	width, height := r.Size()
	return clampIndex(row, height), clampIndex(col, width)
}

// octant maps an angle (measured from twelve o'clock at -90) to a frame index.
func octant(angle float64) int {
	return clampIndex(int(normalize(angle+90)/45), len(glyphFrames))
}

// normalize folds deg into [0, 360). NaN and infinities fold to 0.
func normalize(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	norm := math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	return norm
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
