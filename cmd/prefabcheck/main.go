// Command prefabcheck loads every prefab table, builds each entry into a
// scratch world and reports components, references and scripts that would be
// skipped at spawn time.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/entity"
	"github.com/milk9111/spacecombat/ecs/system"
	"github.com/milk9111/spacecombat/prefabs"
)

type checker struct {
	tables   *prefabs.Tables
	problems int
}

func (c *checker) report(format string, args ...any) {
	c.problems++
	fmt.Printf(format+"\n", args...)
}

func main() {
	settingsName := flag.String("settings", "settings.yaml", "settings file under prefabs/")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetPrefix("prefabcheck: ")

	c := &checker{tables: prefabs.NewTables(nil)}
	if err := c.tables.LoadAll(context.Background()); err != nil {
		log.Fatalf("load tables: %v", err)
	}

	c.checkData()
	c.checkBlueprints()
	c.checkScenario(*settingsName)

	if c.problems > 0 {
		fmt.Printf("%d problem(s)\n", c.problems)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func (c *checker) checkData() {
	for _, key := range c.tables.Data.Keys() {
		for _, entry := range c.tables.Data.Entries(key) {
			w := ecs.NewWorld()
			if err := entity.AddComponents(w, ecs.CreateEntity(w), entry.Components); err != nil {
				c.report("data/%s %s: %v", key, entry.EntryName(), err)
			}
		}
	}
}

func (c *checker) checkBlueprints() {
	for _, key := range c.tables.Blueprints.Keys() {
		for _, entry := range c.tables.Blueprints.Entries(key) {
			w := ecs.NewWorld()
			if err := entity.AddComponents(w, ecs.CreateEntity(w), entry.Components); err != nil {
				c.report("blueprint/%s %s: %v", key, entry.EntryName(), err)
			}
			refs := append(append([]prefabs.TableRef(nil), entry.Modules...), entry.Children...)
			for _, ref := range refs {
				if !c.hasData(ref) {
					c.report("blueprint/%s %s: missing %s", key, entry.EntryName(), ref)
				}
			}
		}
	}
}

func (c *checker) checkScenario(name string) {
	settings, err := prefabs.LoadSettings(name)
	if err != nil {
		c.report("%s: %v", name, err)
		return
	}
	for _, ship := range settings.Scenario.Ships {
		if !c.hasBlueprint(prefabs.BlueprintShip, ship.Blueprint) {
			c.report("%s: unknown ship blueprint %q", name, ship.Blueprint)
		}
		if ship.AI == "" {
			continue
		}
		if err := system.CompileScript(ship.AI); err != nil {
			c.report("%s: script %q: %v", name, ship.AI, err)
		}
	}
}

func (c *checker) hasData(ref prefabs.TableRef) bool {
	for _, e := range c.tables.Data.Entries(ref.Table) {
		if e.EntryName() == ref.Entry {
			return true
		}
	}
	return false
}

func (c *checker) hasBlueprint(key, name string) bool {
	for _, e := range c.tables.Blueprints.Entries(key) {
		if e.EntryName() == name {
			return true
		}
	}
	return false
}
