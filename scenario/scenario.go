// Package scenario loads valve graph documents (YAML or JSON) and turns them
// into a core.Graph plus the start valve.
//
//	start: AA
//	valves:
//	  - id: AA
//	    rate: 0
//	    tunnels: [DD, II, BB]
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/core"
)

// DefaultStart is used when a document does not name a start valve.
const DefaultStart = "AA"

// Sentinel errors for malformed documents.
var (
	ErrNoValves       = errors.New("scenario: no valves declared")
	ErrDuplicateValve = errors.New("scenario: valve declared twice")
	ErrUnknownTunnel  = errors.New("scenario: tunnel leads to undeclared valve")
	ErrUnknownStart   = errors.New("scenario: start valve not declared")
)

// Valve is one declared valve and the tunnels leaving it.
type Valve struct {
	ID      string   `yaml:"id" json:"id"`
	Rate    int      `yaml:"rate" json:"rate"`
	Tunnels []string `yaml:"tunnels" json:"tunnels"`
}

// Scenario is a parsed graph document.
type Scenario struct {
	Start    string  `yaml:"start" json:"start"`
	Directed bool    `yaml:"directed" json:"directed"`
	Valves   []Valve `yaml:"valves" json:"valves"`
}

// LoadFile reads a scenario file; the format follows the extension
// (.yaml/.yml, .json or .txt for scan reports), falling back to content
// sniffing.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses a scenario from bytes. ext is a format hint (".json",
// ".yaml", ".yml"); empty means detect from content.
func Load(data []byte, ext string) (*Scenario, error) {
	ext = strings.ToLower(ext)
	if ext == "" {
		trimmed := strings.TrimSpace(string(data))
		switch {
		case strings.HasPrefix(trimmed, "{"):
			ext = ".json"
		case strings.HasPrefix(trimmed, "Valve "):
			ext = ".txt"
		}
	}

	var s Scenario
	switch ext {
	case ".txt":
		return parseScan(data)
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse scenario json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse scenario yaml: %w", err)
		}
	}
	if s.Start == "" {
		s.Start = DefaultStart
	}

	return &s, nil
}

// Graph validates the document and builds the raw graph. Every tunnel must
// lead to a declared valve and the start must be declared.
func (s *Scenario) Graph() (*core.Graph, error) {
	if len(s.Valves) == 0 {
		return nil, ErrNoValves
	}
	declared := make(map[string]struct{}, len(s.Valves))
	for _, v := range s.Valves {
		if _, dup := declared[v.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, v.ID)
		}
		declared[v.ID] = struct{}{}
	}
	if _, ok := declared[s.Start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStart, s.Start)
	}

	g := core.NewGraph(core.WithDirected(s.Directed))
	for _, v := range s.Valves {
		if err := g.AddVertex(v.ID, v.Rate); err != nil {
			return nil, fmt.Errorf("scenario: valve %q: %w", v.ID, err)
		}
	}
	for _, v := range s.Valves {
		for _, to := range v.Tunnels {
			if _, ok := declared[to]; !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrUnknownTunnel, v.ID, to)
			}
			if err := g.AddEdge(v.ID, to); err != nil {
				return nil, fmt.Errorf("scenario: tunnel %q → %q: %w", v.ID, to, err)
			}
		}
	}

	return g, nil
}
