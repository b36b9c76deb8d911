package game

import (
	"fmt"

	"platformer/internal/camera"
	"platformer/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// tuningSlider is one row of the tuning panel.
type tuningSlider struct {
	label    string
	min, max float32
	value    func() *float32
}

// tuningPanel lets the player controller and camera be tweaked while playing. Values
// edited here last until the next level load.
type tuningPanel struct {
	Visible bool
}

const (
	panelX     = 10
	panelWidth = 300
	rowHeight  = 24
)

func panelSliders(cc *components.CharacterController, cam *camera.FollowCamera) []tuningSlider {
	return []tuningSlider{
		{"Move speed", 1, 12, func() *float32 { return &cc.MoveSpeed }},
		{"Gravity", 5, 40, func() *float32 { return &cc.Gravity }},
		{"Jump", 2, 15, func() *float32 { return &cc.JumpStrength }},
		{"Step height", 0, 1, func() *float32 { return &cc.Body.StepHeight }},
		{"Camera distance", 3, 15, func() *float32 { return &cam.Distance }},
	}
}

// Draw draws the panel and writes any slider changes straight into cc and cam. It
// reports the new value of the debug checkbox.
func (p *tuningPanel) Draw(cc *components.CharacterController, cam *camera.FollowCamera, debug bool) bool {
	if !p.Visible || cc == nil {
		return debug
	}

	sliders := panelSliders(cc, cam)
	y := float32(90)
	height := float32(len(sliders)+2) * rowHeight
	rl.DrawRectangleRec(rl.Rectangle{X: panelX, Y: y - 8, Width: panelWidth, Height: height + 16}, colorBgPanel)

	gui.Label(rl.Rectangle{X: panelX + 8, Y: y, Width: panelWidth - 16, Height: rowHeight}, "Tuning (Tab to hide)")
	y += rowHeight

	for _, s := range sliders {
		v := s.value()
		text := fmt.Sprintf("%s %.2f", s.label, *v)
		*v = gui.Slider(rl.Rectangle{X: panelX + 8, Y: y + 4, Width: 150, Height: rowHeight - 8}, "", text, *v, s.min, s.max)
		y += rowHeight
	}

	return gui.CheckBox(rl.Rectangle{X: panelX + 8, Y: y + 4, Width: rowHeight - 8, Height: rowHeight - 8}, "Debug view", debug)
}
