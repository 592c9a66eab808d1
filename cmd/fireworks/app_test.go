package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/sim"
)

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	world := sim.NewWorld(sim.DefaultConfig(), sim.NewRand(7), 0, 0)
	cfg := launch.DefaultConfig()
	l := launch.NewLauncher(world, sim.NewRand(8), cfg)
	s := launch.NewScheduler(l, cfg)
	return newApp(screen, 4, world, l, s), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppWorldMatchesScreen(t *testing.T) {
	a, _ := newTestApp(t)
	w, h := a.world.Size()
	if w != 320 || h != 192 {
		t.Errorf("world = %vx%v, want 320x192", w, h)
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	for _, ev := range []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if a.handle(ev) {
			t.Errorf("%T did not quit", ev)
		}
	}
	if !a.handle(key('x')) {
		t.Error("unbound key quit")
	}
}

func TestAppSpaceLaunchesBurst(t *testing.T) {
	a, _ := newTestApp(t)
	a.handle(key(' '))

	rockets := a.world.Rockets()
	if len(rockets) != 1 || rockets[0].Kind != sim.RocketBurst {
		t.Fatalf("rockets = %+v, want one burst", rockets)
	}
}

func TestAppWordKeyCycles(t *testing.T) {
	a, _ := newTestApp(t)
	a.handle(key('t'))
	a.handle(key('t'))

	rockets := a.world.Rockets()
	if len(rockets) != 2 {
		t.Fatalf("got %d rockets, want 2", len(rockets))
	}
	if rockets[0].Payload != "FELIZ" || rockets[1].Payload != "AÑO" {
		t.Errorf("payloads = %q, %q", rockets[0].Payload, rockets[1].Payload)
	}
}

func TestAppMousePressLaunchesOnce(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	// held button is not a new press
	a.handle(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))

	rockets := a.world.Rockets()
	if len(rockets) != 1 {
		t.Fatalf("got %d rockets, want 1", len(rockets))
	}
	x, y := a.presenter.CellToWorld(10, 5)
	if rockets[0].Target.X != x || rockets[0].Target.Y != y {
		t.Errorf("target = %v, want (%v, %v)", rockets[0].Target, x, y)
	}
}

func TestAppResize(t *testing.T) {
	a, screen := newTestApp(t)
	screen.SetSize(40, 10)
	a.handle(tcell.NewEventResize(40, 10))

	w, h := a.world.Size()
	if w != 160 || h != 80 {
		t.Errorf("world = %vx%v, want 160x80", w, h)
	}
}

func TestAppPauseFreezesWorld(t *testing.T) {
	a, _ := newTestApp(t)
	a.handle(key(' '))
	a.handle(key('p'))

	before := a.world.Rockets()[0].Pos
	a.frame(time.Second)
	if got := a.world.Rockets()[0].Pos; got != before {
		t.Errorf("paused rocket moved from %v to %v", before, got)
	}
	if a.scheduler.Elapsed() != 0 {
		t.Errorf("paused scheduler advanced to %v", a.scheduler.Elapsed())
	}

	a.handle(key('p'))
	a.frame(time.Second / 60)
	if a.world.Ticks() != 1 {
		t.Errorf("ticks = %d after resume, want 1", a.world.Ticks())
	}
}

func TestAppFrameDrawsStatus(t *testing.T) {
	a, screen := newTestApp(t)
	a.frame(time.Second / 60)

	r, _, _, _ := screen.GetContent(1, 23)
	if r != 'r' {
		t.Errorf("status first rune = %q, want 'r'", r)
	}

	a.handle(key('h'))
	a.frame(time.Second / 60)
	if r, _, _, _ := screen.GetContent(1, 23); r != '▀' {
		t.Errorf("hidden status left %q", r)
	}
}
