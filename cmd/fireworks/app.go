package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/sim"
)

var statusColor = render.RGB{R: 150, G: 160, B: 190}

// app owns one world and drives it from terminal events and frames
type app struct {
	screen    tcell.Screen
	presenter *render.Presenter
	world     *sim.World
	launcher  *launch.Launcher
	scheduler *launch.Scheduler

	paused     bool
	showStatus bool
	lastWord   string
	buttons    tcell.ButtonMask
}

func newApp(screen tcell.Screen, scale float64, world *sim.World, l *launch.Launcher, s *launch.Scheduler) *app {
	a := &app{
		screen:     screen,
		presenter:  render.NewPresenter(screen, scale),
		world:      world,
		launcher:   l,
		scheduler:  s,
		showStatus: true,
	}
	a.world.Resize(a.presenter.Canvas().WorldSize())
	return a
}

// handle applies one event, returns false when the app should quit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if a.presenter.Sync() {
			a.world.Resize(a.presenter.Canvas().WorldSize())
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				a.launcher.LaunchBackgroundRocket()
			case 't', 'T':
				a.lastWord = a.scheduler.LaunchNextWord()
			case 'p', 'P':
				a.paused = !a.paused
			case 'h', 'H':
				a.showStatus = !a.showStatus
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = buttons
		if pressed {
			col, row := ev.Position()
			a.launcher.PointerPress(a.presenter.CellToWorld(col, row))
		}
	}
	return true
}

// frame advances by dt unless paused and presents the world
func (a *app) frame(dt time.Duration) {
	if !a.paused {
		a.scheduler.Advance(dt)
		a.world.Tick()
	}

	a.world.Draw(a.presenter.Canvas())
	a.presenter.Present()
	if a.showStatus {
		a.presenter.DrawStatus(a.status(), statusColor)
	}
	a.presenter.Show()
}

func (a *app) status() string {
	state := "running"
	if a.paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s  t=%.1fs  rockets %d  particles %d  [space] burst [t] word [click] launch [p] pause [h] hud [q] quit",
		state,
		a.scheduler.Elapsed().Seconds(),
		len(a.world.Rockets()),
		len(a.world.Particles()),
	)
}
