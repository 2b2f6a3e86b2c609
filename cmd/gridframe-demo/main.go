// Command gridframe-demo hosts the viewport subsystem on a simulated
// pixel-space window rendered inside a real terminal.
//
// Keys:
//
//	+/-      font size up/down (grid preserved)
//	t        cycle tab count 1..3
//	r        toggle live-resize gesture; arrows drag the window edge
//	j/k      scroll (drives the auto-hiding indicator)
//	g/s/i    oscillator growing/shrinking/idle
//	q/Esc    quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridframe/config"
	"github.com/lixenwraith/gridframe/events"
	"github.com/lixenwraith/gridframe/geometry"
	"github.com/lixenwraith/gridframe/sched"
	"github.com/lixenwraith/gridframe/status"
	"github.com/lixenwraith/gridframe/viewport"
)

const (
	logDir      = "logs"
	logFileName = "gridframe-demo.log"
)

var (
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
	configFlag = flag.String("config", "", "Path to a gridframe.toml tuning file")
)

// setupLogging routes the stdlib logger to a file when debug is enabled
// and discards it otherwise. Returns the open file, or nil when disabled
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tun, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nGRIDFRAME-DEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app := newApp(screen, tun)
	app.run()

	// Final counter dump for debug sessions
	app.reg.Ints.Range(func(key string, v *atomic.Int64) {
		log.Printf("metric %s=%d", key, v.Load())
	})
}

// app owns the UI loop: intent queue in, dispatch, timers, render
type app struct {
	screen tcell.Screen
	tun    config.Tuning

	clock     *sched.TimeProvider
	scheduler *sched.Scheduler
	queue     *events.Queue
	router    *events.Router
	reg       *status.Registry

	grid    *simGrid
	win     *simWindow
	coord   *viewport.Coordinator
	tracker *viewport.InsetTracker
	ind     *viewport.ScrollIndicator
	osc     *viewport.Oscillator

	// Cached metric pointers for the per-frame status line
	opacity  *status.AtomicFloat
	liveFlag *atomic.Bool

	// Demo-side scroll model feeding the indicator
	scrollPos  float64
	knobProp   float64
	tabCount   int
	liveResize bool
	quit       bool
}

func newApp(screen tcell.Screen, tun config.Tuning) *app {
	a := &app{
		screen:   screen,
		tun:      tun,
		clock:    sched.NewTimeProvider(),
		queue:    events.NewQueue(),
		reg:      status.NewRegistry(),
		grid:     newSimGrid(80, 25),
		win:      newSimWindow(geometry.Rect{X: 120, Y: 160, W: 700, H: 520}),
		knobProp: 0.35,
		tabCount: 1,
	}
	a.scheduler = sched.NewScheduler(a.clock)
	a.router = events.NewRouter(a.queue)

	a.coord = viewport.NewCoordinator(a.grid, a.win, tun, a.reg)
	a.win.onFrame = a.coord.OnWindowFrameChanged
	a.tracker = viewport.NewInsetTracker(tun, a.scheduler, a.coord, a.reg)
	a.ind = viewport.NewScrollIndicator(tun, a.clock, a.scheduler, a.reg)
	a.osc = viewport.NewOscillator(a.coord, a.grid, a.scheduler, tun, a.reg)

	a.router.Register(a.coord)
	a.router.Register(a.tracker)
	a.router.Register(a.ind)
	a.router.Register(a.osc)

	a.opacity = a.reg.Floats.Get("indicator.opacity")
	a.liveFlag = a.reg.Bools.Get("coordinator.live_resize")

	// Settle the initial frame onto the initial grid
	a.coord.RequestGridSize(80, 25)
	return a
}

func (a *app) run() {
	// Dedicated input goroutine; intents cross over through the queue
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			a.handleEvent(ev)
		case <-ticker.C:
			a.router.DispatchAll()
			a.scheduler.RunDue()
			a.render()
		}
	}
}

// handleEvent translates toolkit events into viewport intents
func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventMouse:
		if btns := ev.Buttons(); btns&tcell.WheelUp != 0 {
			a.scrollBy(-0.05)
		} else if btns&tcell.WheelDown != 0 {
			a.scrollBy(0.05)
		}

	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *app) handleKey(ev *tcell.EventKey) {
	if a.liveResize {
		// Arrows drag the window edge; toolkit reports each frame change
		switch ev.Key() {
		case tcell.KeyLeft:
			a.dragBy(-10, 0)
			return
		case tcell.KeyRight:
			a.dragBy(10, 0)
			return
		case tcell.KeyUp:
			a.dragBy(0, -10)
			return
		case tcell.KeyDown:
			a.dragBy(0, 10)
			return
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit = true
	case '+', '=':
		a.changeFont(1)
	case '-':
		a.changeFont(-1)
	case 't':
		a.tabCount = a.tabCount%3 + 1
		a.push(events.IntentChromeContextChanged, &events.ChromeContextPayload{
			TitleBarHeight: 28,
			TabCount:       a.tabCount,
		})
	case 'r':
		a.toggleLiveResize()
	case 'j':
		a.scrollBy(0.05)
	case 'k':
		a.scrollBy(-0.05)
	case 'g':
		a.push(events.IntentOscillatorDirection, &events.OscillatorDirectionPayload{Direction: int(viewport.DirectionGrowing)})
	case 's':
		a.push(events.IntentOscillatorDirection, &events.OscillatorDirectionPayload{Direction: int(viewport.DirectionShrinking)})
	case 'i':
		a.push(events.IntentOscillatorDirection, &events.OscillatorDirectionPayload{Direction: int(viewport.DirectionIdle)})
	}
}

func (a *app) push(t events.IntentType, payload any) {
	a.queue.Push(events.Intent{Type: t, Payload: payload, Timestamp: a.clock.Now()})
}

func (a *app) scrollBy(delta float64) {
	a.scrollPos += delta
	if a.scrollPos < 0 {
		a.scrollPos = 0
	}
	if a.scrollPos > 1 {
		a.scrollPos = 1
	}
	a.push(events.IntentScrollInput, &events.ScrollInputPayload{Inside: true})
}

func (a *app) dragBy(dw, dh float64) {
	a.win.drag(dw, dh)
	a.push(events.IntentWindowFrameChanged, nil)
	log.Printf("drag: frame=%+v", a.win.Frame())
}

func (a *app) toggleLiveResize() {
	a.liveResize = !a.liveResize
	if a.liveResize {
		a.push(events.IntentLiveResizeBegan, nil)
	} else {
		a.push(events.IntentLiveResizeEnded, nil)
		a.push(events.IntentWindowFrameChanged, nil)
	}
}

func (a *app) changeFont(delta float64) {
	size := a.grid.font.Size + delta
	if size < 8 {
		size = 8
	}
	if size > 32 {
		size = 32
	}
	a.push(events.IntentFontChanged, &events.FontChangedPayload{
		Name:         a.grid.font.Name,
		Size:         size,
		PreserveGrid: true,
	})
}
