package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table keys. A blueprint table lives at blueprint/<key>.yaml and a data table
// at data/<key>.yaml.
const (
	BlueprintShip = "ship"

	DataEngine    = "engine"
	DataGun       = "gun"
	DataStructure = "structure"
)

func BlueprintKeys() []string { return []string{BlueprintShip} }
func DataKeys() []string      { return []string{DataEngine, DataGun, DataStructure} }

// Entry is a named record in a table.
type Entry interface {
	EntryName() string
}

// TableRef points at one entry of one data table. In YAML it is either
// [table, entry] or {table: ..., entry: ...}.
type TableRef struct {
	Table string `yaml:"table"`
	Entry string `yaml:"entry"`
}

func (r *TableRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("prefabs: line %d: table reference needs [table, entry]", value.Line)
		}
		r.Table = value.Content[0].Value
		r.Entry = value.Content[1].Value
		return nil
	case yaml.MappingNode:
		type plain TableRef
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*r = TableRef(p)
		return nil
	}
	return fmt.Errorf("prefabs: line %d: invalid table reference", value.Line)
}

func (r TableRef) String() string {
	return r.Table + "/" + r.Entry
}

// BlueprintEntry describes a composite entity: components on the parent,
// modules merged into the parent, and children spawned as separate entities.
type BlueprintEntry struct {
	Name       string          `yaml:"name"`
	ID         string          `yaml:"id"`
	Components []ComponentData `yaml:"components"`
	Modules    []TableRef      `yaml:"modules"`
	Children   []TableRef      `yaml:"children"`
}

// EntryName accepts id as an alias of name.
func (b BlueprintEntry) EntryName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// DataEntry is a named bundle of components.
type DataEntry struct {
	Name       string          `yaml:"name"`
	ID         string          `yaml:"id"`
	Components []ComponentData `yaml:"components"`
}

func (d DataEntry) EntryName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// DecodeTable parses an ordered list of entries.
func DecodeTable[E Entry](data []byte) ([]E, error) {
	var entries []E
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
