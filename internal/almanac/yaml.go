package almanac

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"almanac/internal/mapping"
	"almanac/internal/pipeline"
	"almanac/internal/seed"
)

// File permission for written documents.
const filePerm = 0o644

// Document is the YAML form of an almanac.
type Document struct {
	Seeds  []uint64   `yaml:"seeds,flow"`
	Stages []StageDoc `yaml:"stages"`
}

// StageDoc is the YAML form of one stage.
type StageDoc struct {
	Name     string            `yaml:"name"`
	Mappings []mapping.Mapping `yaml:"mappings"`
}

// LoadFile reads a document from path. Files ending in .yaml or .yml are
// decoded as YAML, anything else as the text format.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac %s: %w", path, err)
	}

	var a *Almanac
	if isYAML(path) {
		a, err = Unmarshal(data)
	} else {
		a, err = Parse(bytes.NewReader(data))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac %s: %w", path, err)
	}

	return a, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Unmarshal decodes a YAML document. Unknown keys are rejected.
func Unmarshal(data []byte) (*Almanac, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	if doc.Seeds == nil {
		return nil, ErrMissingSeedLine
	}

	return doc.Almanac(), nil
}

// Almanac converts the document into its runtime form.
func (d *Document) Almanac() *Almanac {
	tokens := make([]string, len(d.Seeds))
	for i, v := range d.Seeds {
		tokens[i] = strconv.FormatUint(v, 10)
	}

	stages := make([]pipeline.Stage, len(d.Stages))
	for i, st := range d.Stages {
		stages[i] = pipeline.Stage{Name: st.Name, Table: mapping.NewTable(st.Mappings...)}
	}

	return &Almanac{SeedTokens: tokens, Pipeline: pipeline.New(stages...)}
}

// Document converts the almanac into its YAML form. Seed tokens must be
// valid integers.
func (a *Almanac) Document() (*Document, error) {
	seeds, err := seed.ParseScalars(a.SeedTokens)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	doc := &Document{Seeds: []uint64(seeds), Stages: []StageDoc{}}

	for _, st := range a.Pipeline.Stages() {
		doc.Stages = append(doc.Stages, StageDoc{Name: st.Name, Mappings: st.Table.Mappings()})
	}

	return doc, nil
}

// Marshal serializes an almanac to YAML.
func Marshal(a *Almanac) ([]byte, error) {
	doc, err := a.Document()
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(doc)
}

// WriteFile writes an almanac as YAML to the given path.
func WriteFile(a *Almanac, path string) error {
	data, err := Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write almanac %s: %w", path, err)
	}

	return nil
}
