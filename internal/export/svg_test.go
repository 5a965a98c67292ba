package export

import (
	"strings"
	"testing"

	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/spiral"
	"github.com/san-kum/fibgalaxy/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(0, 0)
	c.Set(3, 7)

	svg := CanvasToSVG(c, 4.0, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 circles, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, `fill="#00ff00"`) {
		t.Error("missing fill color")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestCanvasToSVG_Empty(t *testing.T) {
	if CanvasToSVG(nil, 4.0, "#fff") != "" {
		t.Error("nil canvas should render empty string")
	}

	svg := CanvasToSVG(viz.NewCanvas(2, 2), 4.0, "#fff")
	if strings.Contains(svg, "<circle") {
		t.Error("blank canvas should have no circles")
	}
}

func TestPolylineToSVG(t *testing.T) {
	pts, err := spiral.Points(spiral.DefaultScale, fib.Phi, spiral.MaxTheta(8), 200)
	if err != nil {
		t.Fatal(err)
	}

	svg := PolylineToSVG(pts, 400, 400, "cyan")

	if !strings.Contains(svg, `stroke="cyan"`) {
		t.Error("missing stroke color")
	}
	if !strings.Contains(svg, `d="M`) {
		t.Error("missing path start")
	}
	if strings.Count(svg, " L") != 199 {
		t.Errorf("expected 199 segments, got %d", strings.Count(svg, " L"))
	}
}

func TestPolylineToSVG_TooShort(t *testing.T) {
	if PolylineToSVG([]spiral.Point{{X: 1, Y: 1}}, 100, 100, "red") != "" {
		t.Error("single point should render empty string")
	}
}
