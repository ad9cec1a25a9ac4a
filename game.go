package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/render"
	"github.com/milk9111/raindrop/ecs/system"
	"github.com/milk9111/raindrop/game"
	"github.com/milk9111/raindrop/levels"
	"github.com/milk9111/raindrop/prefabs"
)

type Game struct {
	session *game.Session
	tuning  *prefabs.Tuning
	debug   bool
	mute    bool

	paused bool
	quit   bool

	titleUI    *ebitenui.UI
	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
	victoryUI  *ebitenui.UI

	watcher *prefabs.Watcher
}

func NewGame(tuning *prefabs.Tuning, debug, watch, mute bool) (*Game, error) {
	session, err := game.New(tuning, nil, game.Options{Sound: newSoundBank(), Mute: mute})
	if err != nil {
		return nil, err
	}
	g := &Game{session: session, tuning: tuning, debug: debug, mute: mute}
	g.titleUI = NewTitleUI(g)
	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewBannerUI(g, "Evaporated")
	g.victoryUI = NewBannerUI(g, "The storm has passed")

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reload()

	flow := g.session.Flow()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && flow.State == component.StateMain {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if ui := g.overlay(flow); ui != nil {
		ui.Update()
	}

	mx, my := ebiten.CursorPosition()
	g.session.Update(1/float64(ebiten.TPS()), system.InputState{
		CursorX:       float64(mx),
		CursorY:       float64(my),
		AttackPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	})
	return nil
}

// reload picks up edited prefabs. Level scripts are read fresh on every run.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Changed()
	if len(changed) == 0 {
		return
	}
	log.Printf("watch: changed %v", changed)
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("watch: reload: %v", err)
		return
	}
	tuning.Game.Level = g.tuning.Game.Level
	g.tuning = tuning
	g.session.Reload(tuning)
}

func (g *Game) overlay(flow *component.GameFlow) *ebitenui.UI {
	switch flow.State {
	case component.StateTitle:
		return g.titleUI
	case component.StateGameOver:
		if flow.Victory {
			return g.victoryUI
		}
		return g.gameOverUI
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	cam := g.session.Camera()
	render.DrawWorld(screen, g.session.World(), cam)

	flow := g.session.Flow()
	if player, ok := g.session.Player(); ok {
		render.DrawVignette(screen, player.Radius)
		if flow.State == component.StateMain {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("radius %.1f", player.Radius), 8, 8)
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	} else if ui := g.overlay(flow); ui != nil {
		ui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f  state: %s  camera: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS(), flow.State, cam.Y), 8, 24)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.tuning.Game.ScreenWidth, g.tuning.Game.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
