package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/abecedary/internal/alphabet"
)

// TraceSnapshot captures the complete trace of one engine execution.
// All fields serialize deterministically: symbols and edges are sorted,
// and map keys come out in encoding/json's sorted key order.
type TraceSnapshot struct {
	Scenario  string         `json:"scenario"`
	Words     []string       `json:"words"`
	Symbols   []string       `json:"symbols,omitempty"`
	Edges     []string       `json:"edges,omitempty"`
	InDegrees map[string]int `json:"in_degrees,omitempty"`
	Status    string         `json:"status"`
	Order     string         `json:"order,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}

// fillGraph records the assembled graph in the snapshot. Not called for
// prefix conflicts: extraction halts before assembly completes, so those
// snapshots carry only the outcome.
func (s *TraceSnapshot) fillGraph(analysis *alphabet.Analysis) {
	for _, r := range analysis.Symbols() {
		s.Symbols = append(s.Symbols, string(r))
	}
	for _, e := range analysis.Edges() {
		s.Edges = append(s.Edges, fmt.Sprintf("%s->%s", string(e.From), string(e.To)))
	}
	s.InDegrees = make(map[string]int, len(s.Symbols))
	for r, d := range analysis.InDegrees() {
		s.InDegrees[string(r)] = d
	}
}

// marshal renders the snapshot as indented JSON without HTML escaping,
// so edge arrows stay readable in golden files.
func (s *TraceSnapshot) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares its trace snapshot
// against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := result.Snapshot.marshal()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
