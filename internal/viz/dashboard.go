package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fibgalaxy/internal/config"
	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/galaxy"
	"github.com/san-kum/fibgalaxy/internal/spiral"
)

// Panel dimensions in characters. The galaxy gets the big square; the ratio
// plot and spiral stack beside it.
const (
	galaxyCols = 56
	galaxyRows = 22
	spiralCols = 34
	spiralRows = 11
	ratioWidth = 58
	ratioRows  = 9

	// world extent of the galaxy view
	galaxyExtent = 6.0
)

type TickMsg time.Time

// Dashboard is the bubbletea model driving all four panels from one
// virtual clock.
type Dashboard struct {
	cfg    *config.Config
	seq    fib.Terms
	ratios []float64
	field  *galaxy.Field
	frame  *galaxy.Frame

	galaxyCanvas *Canvas
	spiralCanvas *Canvas

	theme  Theme
	styles styleSet

	t         float64
	running   bool
	showHelp  bool
	recording bool
	frames    []*image.Paletted
	savedGIF  string
}

// NewDashboard builds the model from pre-generated data.
func NewDashboard(cfg *config.Config, seq fib.Terms, field *galaxy.Field) Dashboard {
	theme := GetTheme(cfg.Theme)
	return Dashboard{
		cfg:          cfg,
		seq:          seq,
		ratios:       seq.Ratios(),
		field:        field,
		frame:        field.Frame(0),
		galaxyCanvas: NewCanvas(galaxyCols, galaxyRows),
		spiralCanvas: NewCanvas(spiralCols, spiralRows),
		theme:        theme,
		styles:       newStyleSet(theme),
		running:      true,
	}
}

func (d Dashboard) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(d.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (d Dashboard) Init() tea.Cmd {
	return d.tick()
}

func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case " ":
			d.running = !d.running
		case "r":
			d.t = 0
			d.savedGIF = ""
		case "t":
			d.theme = NextTheme(d.theme.Name)
			d.styles = newStyleSet(d.theme)
		case "g":
			if d.recording {
				d.savedGIF = d.saveGIF()
				d.recording = false
				d.frames = nil
			} else {
				d.recording = true
				d.savedGIF = ""
				d.frames = make([]*image.Paletted, 0)
			}
		case "?":
			d.showHelp = !d.showHelp
		}
	case TickMsg:
		if d.running {
			d.t += d.cfg.RotationSpeed
		}
		if d.recording {
			d.drawGalaxy()
			d.frames = append(d.frames, d.captureFrame())
		}
		return d, d.tick()
	}
	return d, nil
}

// drawGalaxy replots the star field for the current virtual time.
func (d *Dashboard) drawGalaxy() {
	d.field.FrameInto(d.frame, d.t)
	d.galaxyCanvas.Clear()
	vp := Viewport{MinX: -galaxyExtent, MaxX: galaxyExtent, MinY: -galaxyExtent, MaxY: galaxyExtent}
	for i := range d.frame.X {
		if px, py, ok := vp.Dot(d.galaxyCanvas, d.frame.X[i], d.frame.Y[i]); ok {
			d.galaxyCanvas.Set(px, py)
		}
	}
}

// drawSpiral grows the spiral out to the current term index and scales the
// viewport so the curve always fills the panel.
func (d *Dashboard) drawSpiral(idx int) {
	d.spiralCanvas.Clear()
	maxTheta := spiral.MaxTheta(idx)
	pts, err := spiral.Points(d.cfg.Spiral.Scale, fib.Phi, maxTheta, d.cfg.Spiral.Samples)
	if err != nil {
		return
	}
	extent := d.cfg.Spiral.Scale * spiral.GrowthPerQuarterTurn(fib.Phi)
	for _, p := range pts {
		if r := abs(p.X); r > extent {
			extent = r
		}
		if r := abs(p.Y); r > extent {
			extent = r
		}
	}
	vp := Viewport{MinX: -extent, MaxX: extent, MinY: -extent, MaxY: extent}
	prevX, prevY, havePrev := 0, 0, false
	for _, p := range pts {
		px, py, ok := vp.Dot(d.spiralCanvas, p.X, p.Y)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			d.spiralCanvas.DrawLine(prevX, prevY, px, py)
		} else {
			d.spiralCanvas.Set(px, py)
		}
		prevX, prevY, havePrev = px, py, true
	}
}

func (d Dashboard) View() string {
	idx := fib.IndexAt(d.t, len(d.seq))
	d.drawGalaxy()
	d.drawSpiral(idx)

	s := d.styles

	status := "RUNNING"
	if !d.running {
		status = "PAUSED"
	}
	header := s.title.Render("FIBONACCI GALAXY") + "  " +
		s.muted.Render(fmt.Sprintf("t=%.2f  term %d/%d  theme:%s", d.t, idx+1, len(d.seq), d.theme.Name)) +
		"  " + s.text.Render(status)
	if d.recording {
		header += "  " + s.recording.Render("● REC")
	} else if d.savedGIF != "" {
		header += "  " + s.muted.Render("saved "+d.savedGIF)
	}

	galaxyPanel := s.panel.Render(
		s.panelName.Render("Galaxy") + "\n" +
			s.galaxy.Render(strings.TrimRight(d.galaxyCanvas.String(), "\n")))

	spiralPanel := s.panel.Render(
		s.panelName.Render("Golden Spiral") + "\n" +
			s.spiral.Render(strings.TrimRight(d.spiralCanvas.String(), "\n")))

	end := idx + 1
	if end < 2 {
		end = 2
	}
	chart := asciigraph.Plot(d.ratios[:end],
		asciigraph.Height(ratioRows),
		asciigraph.Width(ratioWidth-10),
	)
	ratioPanel := s.panel.Render(
		s.panelName.Render("Convergence to φ") + "  " +
			s.accent.Render(fmt.Sprintf("φ=%.6f", fib.Phi)) + "\n" +
			s.ratio.Render(chart))

	stats, err := fib.StatsAt(d.seq, idx)
	statsBody := ""
	if err == nil {
		statsBody = stats.Format()
	}
	progress := ProgressBar(float64(idx)/float64(len(d.seq)-1), 24, s)
	statsPanel := s.panel.Render(
		s.panelName.Render("Statistics") + "  " + progress + "\n" +
			s.text.Render(statsBody) + "\n" +
			s.muted.Render("ratio trail ") + Sparkline(d.ratios[:end], 24, s))

	right := lipgloss.JoinVertical(lipgloss.Left, ratioPanel, spiralPanel)
	top := lipgloss.JoinHorizontal(lipgloss.Top, galaxyPanel, right)

	help := s.muted.Render("SPACE pause  R rewind  T theme  G record gif  ? help  Q quit")
	if d.showHelp {
		help = s.text.Render(strings.Join([]string{
			"space  pause/resume the clock",
			"r      rewind virtual time to zero",
			"t      cycle color themes",
			"g      start/stop GIF recording of the galaxy",
			"?      toggle this help",
			"q      quit",
		}, "\n"))
	}

	return strings.Join([]string{header, top, statsPanel, help}, "\n")
}

// captureFrame rasterizes the galaxy canvas into a paletted image, one
// braille dot becoming a block of pixels.
func (d *Dashboard) captureFrame() *image.Paletted {
	const dotW, dotH = 4, 4
	imgW := d.galaxyCanvas.DotWidth() * dotW
	imgH := d.galaxyCanvas.DotHeight() * dotH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	for row := 0; row < d.galaxyCanvas.Height; row++ {
		for col := 0; col < d.galaxyCanvas.Width; col++ {
			pattern := d.galaxyCanvas.Grid[row][col] - brailleBase
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					baseX := (col*2 + dx) * dotW
					baseY := (row*4 + dy) * dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+px, baseY+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

func (d *Dashboard) saveGIF() string {
	if len(d.frames) == 0 {
		return ""
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range d.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 100/d.cfg.FPS)
	}
	name := "fibgalaxy.gif"
	f, err := os.Create(name)
	if err != nil {
		return ""
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return ""
	}
	return name
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
