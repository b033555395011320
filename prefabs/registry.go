package prefabs

import (
	"context"
	"fmt"
	"log"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

type LoadState uint8

const (
	StateNotLoaded LoadState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Source reads a table file by its prefab-relative path.
type Source func(name string) ([]byte, error)

type table[E Entry] struct {
	path    string
	state   LoadState
	entries []E
	err     error
}

// Registry maps table keys to tables of one entry type. Lookups never block
// and never fail hard: a missing or unready table is a soft miss.
type Registry[E Entry] struct {
	dir    string
	source Source

	mu     sync.RWMutex
	tables map[string]*table[E]
}

// NewRegistry registers keys under dir (e.g. "blueprint") in the not-loaded
// state. A nil source reads through Load.
func NewRegistry[E Entry](dir string, source Source, keys ...string) *Registry[E] {
	if source == nil {
		source = Load
	}
	r := &Registry[E]{
		dir:    dir,
		source: source,
		tables: make(map[string]*table[E], len(keys)),
	}
	for _, k := range keys {
		r.Register(k)
	}
	return r
}

// Register adds a key without loading it.
func (r *Registry[E]) Register(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[key]; ok {
		return
	}
	r.tables[key] = &table[E]{path: path.Join(r.dir, key+".yaml")}
}

func (r *Registry[E]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the prefab-relative file of key.
func (r *Registry[E]) Path(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[key]
	if !ok {
		return "", false
	}
	return t.path, true
}

func (r *Registry[E]) State(key string) LoadState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tables[key]; ok {
		return t.state
	}
	return StateNotLoaded
}

// Ready reports whether every registered table finished loading.
func (r *Registry[E]) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tables {
		if t.state != StateReady {
			return false
		}
	}
	return true
}

// Load reads and decodes one table. A reload keeps serving the previous
// entries until the new ones decode.
func (r *Registry[E]) Load(key string) error {
	r.mu.Lock()
	t, ok := r.tables[key]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("prefabs: %s table %q not registered", r.dir, key)
	}
	prev := t.state
	if prev != StateReady {
		t.state = StateLoading
	}
	file := t.path
	r.mu.Unlock()

	data, err := r.source(file)
	var entries []E
	if err == nil {
		entries, err = DecodeTable[E](data)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		t.err = err
		if prev != StateReady {
			t.state = StateFailed
		}
		return fmt.Errorf("prefabs: load %s: %w", file, err)
	}
	t.entries = entries
	t.err = nil
	t.state = StateReady
	return nil
}

// SetLoading marks key as in flight without touching its entries.
func (r *Registry[E]) SetLoading(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[key]; ok {
		t.state = StateLoading
	}
}

// Resolve finds an entry by name. Any miss logs a warning and returns false.
func (r *Registry[E]) Resolve(key, name string) (E, bool) {
	var zero E
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[key]
	if !ok {
		log.Printf("prefabs: %s table %q not found (have %s)", r.dir, key, strings.Join(r.keysLocked(), ", "))
		return zero, false
	}
	if t.state != StateReady {
		log.Printf("prefabs: %s table %q is %s", r.dir, key, t.state)
		return zero, false
	}
	for _, e := range t.entries {
		if e.EntryName() == name {
			return e, true
		}
	}
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.EntryName())
	}
	log.Printf("prefabs: %s entry %q not found in %q (have %s)", r.dir, name, key, strings.Join(names, ", "))
	return zero, false
}

// Entries returns a copy of key's entries, or nil while it is not ready.
func (r *Registry[E]) Entries(key string) []E {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[key]
	if !ok || t.state != StateReady {
		return nil
	}
	return append([]E(nil), t.entries...)
}

func (r *Registry[E]) keysLocked() []string {
	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tables bundles the blueprint and data registries handed to assembly.
type Tables struct {
	Blueprints *Registry[BlueprintEntry]
	Data       *Registry[DataEntry]
}

// NewTables registers every known key against source (nil reads through Load).
func NewTables(source Source) *Tables {
	return &Tables{
		Blueprints: NewRegistry[BlueprintEntry]("blueprint", source, BlueprintKeys()...),
		Data:       NewRegistry[DataEntry]("data", source, DataKeys()...),
	}
}

func (t *Tables) Ready() bool {
	return t != nil && t.Blueprints.Ready() && t.Data.Ready()
}

// LoadAll loads every table concurrently and returns the first error.
func (t *Tables) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range t.Blueprints.Keys() {
		t.Blueprints.SetLoading(key)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t.Blueprints.Load(key)
		})
	}
	for _, key := range t.Data.Keys() {
		t.Data.SetLoading(key)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t.Data.Load(key)
		})
	}
	return g.Wait()
}

// Reload reloads whichever table lives at file. It reports false when file
// is not a registered table.
func (t *Tables) Reload(file string) (bool, error) {
	clean := cleanPrefabPath(file)
	for _, key := range t.Blueprints.Keys() {
		if p, _ := t.Blueprints.Path(key); p == clean {
			return true, t.Blueprints.Load(key)
		}
	}
	for _, key := range t.Data.Keys() {
		if p, _ := t.Data.Path(key); p == clean {
			return true, t.Data.Load(key)
		}
	}
	return false, nil
}
