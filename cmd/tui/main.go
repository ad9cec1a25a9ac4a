// Command tui plays raindrop in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/system"
	"github.com/milk9111/raindrop/game"
	"github.com/milk9111/raindrop/prefabs"
	"github.com/milk9111/raindrop/sfx"
)

type speakerSound struct{}

func (speakerSound) Play(name string) {
	s, err := sfx.Streamer(name)
	if err != nil {
		return
	}
	speaker.Play(s)
}

type terminal struct {
	screen  tcell.Screen
	session *game.Session
	tuning  *prefabs.Tuning

	cols, rows int
	cursorX    int
	cursorY    int
	attack     bool
}

func main() {
	fps := flag.Int("fps", 30, "simulation ticks per second")
	levelName := flag.String("level", "", "level script in levels/ (basename, .tengo optional)")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "enable debug logging to raindrop-tui.log")
	flag.Parse()

	if *debug {
		f, err := os.Create("raindrop-tui.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
		system.Debug = true
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *levelName != "" {
		tuning.Game.Level = *levelName
	}

	var sound game.SoundPlayer
	if !*mute {
		if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
			log.Printf("audio: %v", err)
		} else {
			defer speaker.Close()
			sound = speakerSound{}
		}
	}

	session, err := game.New(tuning, nil, game.Options{Sound: sound, Mute: *mute})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	t := &terminal{screen: screen, session: session, tuning: tuning}
	t.cols, t.rows = screen.Size()
	t.cursorX, t.cursorY = t.cols/2, t.rows/2
	t.run(*fps)
}

func (t *terminal) run(fps int) {
	if fps <= 0 {
		fps = 30
	}
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	dt := 1 / float64(fps)
	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case <-ticker.C:
			sx, sy := t.toScreen(t.cursorX, t.cursorY)
			t.session.Update(dt, system.InputState{CursorX: sx, CursorY: sy, AttackPressed: t.attack})
			t.attack = false
			t.draw()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			t.attack = true
		case ev.Key() == tcell.KeyLeft:
			t.cursorX = max(0, t.cursorX-1)
		case ev.Key() == tcell.KeyRight:
			t.cursorX = min(t.cols-1, t.cursorX+1)
		case ev.Key() == tcell.KeyUp:
			t.cursorY = max(0, t.cursorY-1)
		case ev.Key() == tcell.KeyDown:
			t.cursorY = min(t.rows-1, t.cursorY+1)
		}
	case *tcell.EventMouse:
		t.cursorX, t.cursorY = ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			t.attack = true
		}
	case *tcell.EventResize:
		t.cols, t.rows = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

// cell sizes in world units.
func (t *terminal) cellSize() (float64, float64) {
	return t.tuning.Game.ScreenWidth / float64(max(t.cols, 1)), t.tuning.Game.ScreenHeight / float64(max(t.rows, 1))
}

func (t *terminal) toScreen(col, row int) (float64, float64) {
	cw, ch := t.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (t *terminal) toCell(sx, sy float64) (int, int) {
	cw, ch := t.cellSize()
	return int(math.Floor(sx / cw)), int(math.Floor(sy / ch))
}

func (t *terminal) draw() {
	t.screen.Clear()
	w := t.session.World()
	cam := t.session.Camera()
	cw, ch := t.cellSize()

	ecs.ForEach2(w, component.AppearanceComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, look *component.Appearance, tf *component.Transform) {
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(look.Color.R), int32(look.Color.G), int32(look.Color.B)))
		sx, sy := system.WorldToScreen(cam, tf.X, tf.Y)
		radius := look.Radius
		if phys, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && phys.Width > 0 {
			radius = phys.Width / 2
		}
		cx, cy := t.toCell(sx, sy)
		rx, ry := int(radius/cw), int(radius/ch)
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				if rx > 0 && ry > 0 {
					nx, ny := float64(dx)/float64(rx), float64(dy)/float64(ry)
					if nx*nx+ny*ny > 1 {
						continue
					}
				}
				t.set(cx+dx, cy+dy, look.Glyph, style)
			}
		}
	})

	flow := t.session.Flow()
	status := fmt.Sprintf(" %s ", flow.State)
	if player, ok := t.session.Player(); ok {
		status += fmt.Sprintf("| radius %.1f ", player.Radius)
	}
	switch {
	case flow.State == component.StateTitle:
		t.text(t.cols/2-14, t.rows/2, "RAINDROP - space/click to fall")
	case flow.State == component.StateGameOver && flow.Victory:
		t.text(t.cols/2-10, t.rows/2, "The storm has passed")
	case flow.State == component.StateGameOver:
		t.text(t.cols/2-5, t.rows/2, "Evaporated")
	}
	t.text(0, 0, status+"| q quits")
	t.set(t.cursorX, t.cursorY, '+', tcell.StyleDefault.Reverse(true))
	t.screen.Show()
}

func (t *terminal) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= t.cols || y >= t.rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *terminal) text(x, y int, s string) {
	for i, r := range s {
		t.set(x+i, y, r, tcell.StyleDefault)
	}
}
