// Package gui renders the galaxy in a Raylib window, a high frame rate
// alternative to the terminal dashboard.
package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fibgalaxy/internal/audio"
	"github.com/san-kum/fibgalaxy/internal/config"
	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/galaxy"
	"github.com/san-kum/fibgalaxy/internal/spiral"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// Theme colors, deep space with a soft white HUD.
var (
	ColBg      = rl.NewColor(8, 8, 14, 255)
	ColAccent  = rl.NewColor(180, 180, 200, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 155, 255)
	ColTextDim = rl.NewColor(60, 60, 70, 255)
	ColSpiral  = rl.NewColor(255, 215, 0, 200)
)

type App struct {
	Cfg    *config.Config
	Seq    fib.Terms
	Ratios []float64
	Field  *galaxy.Field

	Time    float64
	Running bool

	frame     *galaxy.Frame
	telemetry []float64

	Audio *audio.Engine
	Font  rl.Font
}

func initWindow() {
	rl.InitWindow(screenWidth, screenHeight, "fibgalaxy")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, withAudio bool) (*App, error) {
	seq, err := fib.Sequence(cfg.Terms)
	if err != nil {
		return nil, err
	}
	field, err := galaxy.New(cfg.GalaxyParams(), cfg.Seed)
	if err != nil {
		return nil, err
	}

	app := &App{
		Cfg:       cfg,
		Seq:       seq,
		Ratios:    seq.Ratios(),
		Field:     field,
		Running:   true,
		frame:     field.Frame(0),
		telemetry: make([]float64, 0, 200),
		Font:      loadFont(),
	}

	if withAudio {
		eng := audio.NewEngine()
		if err := eng.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		} else {
			app.Audio = eng
		}
	}
	return app, nil
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config, withAudio bool) error {
	initWindow()
	defer rl.CloseWindow()

	app, err := NewApp(cfg, withAudio)
	if err != nil {
		return err
	}
	defer func() {
		if app.Audio != nil {
			app.Audio.Stop()
		}
	}()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Time = 0
		a.telemetry = a.telemetry[:0]
	}

	if !a.Running {
		return
	}

	// The terminal dashboard advances RotationSpeed per tick at Cfg.FPS.
	// Here the window runs at 60, so scale to keep the same pace.
	a.Time += a.Cfg.RotationSpeed * float64(a.Cfg.FPS) / 60.0

	a.Field.FrameInto(a.frame, a.Time)

	idx := fib.IndexAt(a.Time, len(a.Seq))
	a.telemetry = append(a.telemetry, a.Ratios[idx])
	if len(a.telemetry) > 200 {
		a.telemetry = a.telemetry[1:]
	}

	if a.Audio != nil && a.Audio.Active() {
		a.Audio.UpdatePulse(a.Field.MeanBrightness(a.Time))
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawStars()
	a.drawSpiral()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	idx := fib.IndexAt(a.Time, len(a.Seq))
	stats, err := fib.StatsAt(a.Seq, idx)

	a.drawText("fibgalaxy", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %d stars, seed %d", a.Cfg.Stars, a.Cfg.Seed), 170, 34, 16, ColText)

	if err == nil {
		a.drawText(fmt.Sprintf("F(%d) = %d", stats.Index, a.Seq[stats.Index]), 30, 70, 18, ColAccent)
		a.drawText(fmt.Sprintf("ratio %.9f", stats.Ratio), 30, 94, 16, ColText)
		a.drawText(fmt.Sprintf("phi   %.9f", fib.Phi), 30, 114, 16, ColTextDim)
	}

	a.DrawTelemetry()

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	a.drawText("[SPACE] PAUSE  [R] RESET  [Q] QUIT", 920, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)

	if a.Audio != nil && a.Audio.Active() {
		a.drawText("AUDIO [ON]", 30, 650, 14, ColAccent)
	}
}

// DrawTelemetry plots the recent ratio samples as a line strip, the
// convergence toward phi flattening out live.
func (a *App) DrawTelemetry() {
	if len(a.telemetry) < 2 {
		return
	}

	rectX, rectY := 30, 560
	width, height := 400, 60

	minVal, maxVal := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("r: %.6f", a.telemetry[len(a.telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// worldToScreen maps galaxy coordinates (roughly [-6, 6]) to pixels,
// centered, preserving aspect.
func worldToScreen(x, y float64) rl.Vector2 {
	scale := float64(screenHeight) / 13.0
	px := float64(screenWidth)/2 + x*scale
	py := float64(screenHeight)/2 - y*scale
	return rl.NewVector2(float32(px), float32(py))
}

func (a *App) drawStars() {
	for i := range a.frame.X {
		pos := worldToScreen(a.frame.X[i], a.frame.Y[i])
		c := a.frame.Color[i]
		col := rl.NewColor(uint8(c[0]*255), uint8(c[1]*255), uint8(c[2]*255), 255)
		radius := float32(a.frame.Size[i]) / 18.0
		if radius < 0.5 {
			radius = 0.5
		}
		rl.DrawCircleV(pos, radius, col)
	}
}

func (a *App) drawSpiral() {
	idx := fib.IndexAt(a.Time, len(a.Seq))
	pts, err := spiral.Points(a.Cfg.Spiral.Scale, fib.Phi, spiral.MaxTheta(idx), a.Cfg.Spiral.Samples)
	if err != nil {
		return
	}

	points := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		points[i] = worldToScreen(p.X, p.Y)
	}
	rl.DrawLineStrip(points, ColSpiral)
}
