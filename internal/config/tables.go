package config

import (
	"github.com/vvka-141/vertica-loader/internal/load"
	"gopkg.in/yaml.v3"
)

// Tables is the tables section of a loader document. It is either
// LegacyTables (a name: path mapping) or CurrentTables (a list of table
// objects with optional overrides).
type Tables interface {
	isTables()
}

// LegacyTable is one name: path pair of the legacy mapping shape. Every
// option takes its default.
type LegacyTable struct {
	Name string
	Path string
}

// LegacyTables preserves document order.
type LegacyTables []LegacyTable

func (LegacyTables) isTables() {}

// TableEntry is one element of the list shape.
type TableEntry struct {
	Name               string             `yaml:"name"`
	Path               string             `yaml:"path"`
	Truncate           *bool              `yaml:"truncate"`
	Fields             *string            `yaml:"fields"`
	DeleteBeforeInsert DeleteBeforeInsert `yaml:"delete_before_insert"`
}

// CurrentTables preserves document order.
type CurrentTables []TableEntry

func (CurrentTables) isTables() {}

// DeleteBeforeInsert decodes delete_before_insert, which is either a boolean
// or a {field, value} mapping.
type DeleteBeforeInsert struct {
	Policy load.DeletePolicy
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DeleteBeforeInsert) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return invalid("delete_before_insert must be a boolean or a mapping (line %d)", value.Line)
		}
		if enabled {
			d.Policy = load.BySourceFile{}
		} else {
			d.Policy = load.NoDelete{}
		}
		return nil

	case yaml.MappingNode:
		var predicate struct {
			Field *string `yaml:"field"`
			Value *string `yaml:"value"`
		}
		if err := value.Decode(&predicate); err != nil {
			return invalid("delete_before_insert: %v", err)
		}
		if predicate.Field == nil || predicate.Value == nil {
			return invalid("delete_before_insert requires field and value (line %d)", value.Line)
		}
		d.Policy = load.ByPredicate{Field: *predicate.Field, Value: *predicate.Value}
		return nil
	}

	return invalid("delete_before_insert must be a boolean or a mapping (line %d)", value.Line)
}

func resolveTables(node *yaml.Node) (Tables, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		return resolveCurrent(node)
	case yaml.MappingNode:
		return resolveLegacy(node)
	}
	return nil, invalid("tables must be a mapping or a list (line %d)", node.Line)
}

func resolveLegacy(node *yaml.Node) (LegacyTables, error) {
	tables := make(LegacyTables, 0, len(node.Content)/2)
	seen := make(map[string]bool)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, invalid("table name must be a non-empty string (line %d)", key.Line)
		}
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" || value.Value == "" {
			return nil, invalid("path for table %s must be a non-empty string (line %d)", key.Value, value.Line)
		}
		if seen[key.Value] {
			return nil, invalid("table %s is listed twice (line %d)", key.Value, key.Line)
		}
		seen[key.Value] = true
		tables = append(tables, LegacyTable{Name: key.Value, Path: value.Value})
	}

	return tables, nil
}

func resolveCurrent(node *yaml.Node) (CurrentTables, error) {
	tables := make(CurrentTables, 0, len(node.Content))

	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, invalid("tables[%d] must be a mapping (line %d)", i, item.Line)
		}

		var entry TableEntry
		if err := item.Decode(&entry); err != nil {
			return nil, invalid("tables[%d]: %v", i, err)
		}
		if entry.Name == "" {
			return nil, invalid("tables[%d]: name is required (line %d)", i, item.Line)
		}
		if entry.Path == "" {
			return nil, invalid("tables[%d] (%s): path is required (line %d)", i, entry.Name, item.Line)
		}
		tables = append(tables, entry)
	}

	return tables, nil
}
