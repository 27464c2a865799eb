package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/vertica-loader/internal/files/filesystem"
	"github.com/vvka-141/vertica-loader/internal/load"
	"github.com/vvka-141/vertica-loader/pkg/loader"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the loader document does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileSpecConfig is the file_spec block of the loader document. Absent keys
// keep the load.DefaultFileSpec values.
type FileSpecConfig struct {
	Delimiter   *string `yaml:"delimiter"`
	SkipHeader  *bool   `yaml:"skip_header"`
	Format      string  `yaml:"format"`
	Quoted      bool    `yaml:"quoted"`
	RejectedDir string  `yaml:"rejected_dir"`
}

// FileSpec converts the block into a load.FileSpec.
func (c FileSpecConfig) FileSpec() load.FileSpec {
	spec := load.DefaultFileSpec()
	if c.Delimiter != nil {
		spec.Delimiter = *c.Delimiter
	}
	if c.SkipHeader != nil {
		spec.SkipHeader = *c.SkipHeader
	}
	spec.Format = c.Format
	spec.Quoted = c.Quoted
	spec.RejectedDir = c.RejectedDir
	return spec
}

// Document is a parsed loader document: one shared file spec and the
// tables that use it.
type Document struct {
	FileSpec FileSpecConfig
	Tables   Tables
}

type rawDocument struct {
	FileSpec yaml.Node `yaml:"file_spec"`
	Tables   yaml.Node `yaml:"tables"`
}

var fileSpecKeys = map[string]bool{
	"delimiter":    true,
	"skip_header":  true,
	"format":       true,
	"quoted":       true,
	"rejected_dir": true,
}

// Load reads and parses the loader document at path.
func Load(fsProvider filesystem.FileSystemProvider, path string) (*Document, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrConfigNotFound, loader.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a loader document. The shape of the tables key is resolved
// here, once.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, invalid("malformed YAML: %v", err)
	}

	if !present(&raw.FileSpec) {
		return nil, invalid("file_spec is required")
	}
	if raw.FileSpec.Kind != yaml.MappingNode {
		return nil, invalid("file_spec must be a mapping (line %d)", raw.FileSpec.Line)
	}
	for i := 0; i < len(raw.FileSpec.Content); i += 2 {
		key := raw.FileSpec.Content[i]
		if !fileSpecKeys[key.Value] {
			return nil, invalid("unknown file_spec key %q (line %d)", key.Value, key.Line)
		}
	}

	var doc Document
	if err := raw.FileSpec.Decode(&doc.FileSpec); err != nil {
		return nil, invalid("file_spec: %v", err)
	}

	if !present(&raw.Tables) {
		return nil, invalid("tables is required")
	}
	tables, err := resolveTables(&raw.Tables)
	if err != nil {
		return nil, err
	}
	doc.Tables = tables

	return &doc, nil
}

// LoadTableConfigs builds one LoadConfig per table, in document order. Every
// config gets its own copy of the shared file spec and the same dates slice.
func LoadTableConfigs(doc *Document, dates []string) ([]*load.LoadConfig, error) {
	if doc == nil || doc.Tables == nil {
		return nil, invalid("document has no tables")
	}

	spec := doc.FileSpec.FileSpec()

	var configs []*load.LoadConfig
	switch tables := doc.Tables.(type) {
	case LegacyTables:
		for _, t := range tables {
			configs = append(configs, load.NewLoadConfig(t.Name, t.Path, dates,
				load.WithFileSpec(spec),
			))
		}
	case CurrentTables:
		for _, t := range tables {
			truncate := true
			if t.Truncate != nil {
				truncate = *t.Truncate
			}
			fields := ""
			if t.Fields != nil {
				fields = *t.Fields
			}
			configs = append(configs, load.NewLoadConfig(t.Name, t.Path, dates,
				load.WithFileSpec(spec),
				load.WithTruncate(truncate),
				load.WithFields(fields),
				load.WithDeleteBeforeInsert(t.DeleteBeforeInsert.Policy),
			))
		}
	default:
		return nil, invalid("unsupported tables shape %T", tables)
	}

	return configs, nil
}

func present(n *yaml.Node) bool {
	return n.Kind != 0 && !(n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), loader.ErrInvalidConfig)
}
