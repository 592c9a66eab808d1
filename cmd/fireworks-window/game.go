package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/sim"
)

// Game drives one world at the ebiten tick rate
type Game struct {
	world     *sim.World
	launcher  *launch.Launcher
	scheduler *launch.Scheduler

	// Persistent canvas, the trail fill needs last frame's pixels
	canvas  *ebiten.Image
	surface surface

	paused     bool
	showStatus bool
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.launcher.LaunchBackgroundRocket()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.scheduler.LaunchNextWord()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showStatus = !g.showStatus
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.launcher.PointerPress(float64(mx), float64(my))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.launcher.PointerPress(float64(tx), float64(ty))
	}

	if g.paused {
		return nil
	}
	g.scheduler.Advance(parameter.FrameInterval)
	g.world.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = g.canvas
	g.world.Draw(&g.surface)
	screen.DrawImage(g.canvas, nil)

	if g.showStatus {
		state := "running"
		if g.paused {
			state = "paused"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  t=%.1fs  TPS %.0f  rockets %d  particles %d\n[space] burst [t] word [click] launch [p] pause [h] hud [q] quit",
			state, g.scheduler.Elapsed().Seconds(), ebiten.ActualTPS(),
			len(g.world.Rockets()), len(g.world.Particles())))
	}
}

// Layout keeps the world in device-independent pixels and reallocates the canvas on resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas == nil || g.canvas.Bounds().Dx() != outsideWidth || g.canvas.Bounds().Dy() != outsideHeight {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(outsideWidth, outsideHeight)
		g.world.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
