package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spacecombat/ecs/system"
	"github.com/milk9111/spacecombat/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type gameState int

const (
	stateLoading gameState = iota
	stateRunning
	stateFailed
)

type Game struct {
	frames int
	state  gameState
	err    error

	sim      *Simulation
	tables   *prefabs.Tables
	loadDone <-chan error
	render   *system.RenderSystem
}

// NewGame waits on loadDone before spawning the scenario. Nothing is
// simulated while the tables are loading.
func NewGame(sim *Simulation, tables *prefabs.Tables, loadDone <-chan error, debug bool) *Game {
	render := system.NewRenderSystem()
	render.ShowHidden = debug
	return &Game{
		sim:      sim,
		tables:   tables,
		loadDone: loadDone,
		render:   render,
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.render.ShowHidden = !g.render.ShowHidden
	}

	switch g.state {
	case stateLoading:
		select {
		case err := <-g.loadDone:
			if err != nil || !g.tables.Ready() {
				g.state = stateFailed
				g.err = err
				log.Printf("game: prefab tables failed to load: %v", err)
				return nil
			}
			n := g.sim.SpawnScenario(g.tables)
			log.Printf("game: spawned %d scenario entities", n)
			g.state = stateRunning
		default:
		}
	case stateRunning:
		g.sim.Step()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateLoading:
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	case stateFailed:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Failed to load prefabs: %v", g.err))
		return
	}

	g.render.Draw(g.sim.World, screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    Ships: %d    FPS: %.2f", g.sim.World.Tick(), g.sim.Ships(), ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
