package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw hidden entities and log the loaded settings")
	watch := flag.Bool("watch", false, "reload prefab tables and scripts when they change on disk")
	headless := flag.Bool("headless", false, "run the simulation without a window")
	ticks := flag.Int("ticks", 600, "ticks to simulate in headless mode")
	settingsName := flag.String("settings", "settings.yaml", "settings file under prefabs/")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := prefabs.LoadSettings(*settingsName)
	if err != nil {
		log.Printf("settings: %v; using defaults", err)
	}
	if *debug {
		log.Printf("settings: %+v", settings)
	}

	sim := NewSimulation(settings)
	tables := prefabs.NewTables(nil)

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.DefaultWatchDirs()...)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Serve(ctx, tables, sim.AI.Invalidate)
		}
	}

	if *headless {
		runHeadless(ctx, sim, tables, *ticks)
		return
	}

	loadDone := make(chan error, 1)
	go func() {
		loadDone <- tables.LoadAll(ctx)
	}()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("spacecombat")
	ebiten.SetTPS(settings.TickRate)

	game := NewGame(sim, tables, loadDone, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ctx context.Context, sim *Simulation, tables *prefabs.Tables, ticks int) {
	if err := tables.LoadAll(ctx); err != nil {
		log.Fatalf("prefabs: %v", err)
	}
	log.Printf("headless: spawned %d scenario entities", sim.SpawnScenario(tables))
	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		sim.Step()
	}
	log.Printf("headless: %d ticks, %d ships left, %d entities", sim.World.Tick(), sim.Ships(), len(ecs.Entities(sim.World)))
}
