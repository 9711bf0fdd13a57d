package tree

import (
	"testing"

	"github.com/fernseed/treegen/internal/config"
)

func archetypeConfig(typ string) *config.Config {
	cfg := config.Default()
	cfg.Type = typ
	cfg.Branch.Children = 0
	cfg.Branch.ChildrenConfig = nil
	return cfg
}

func TestGenerateArchetypeShapes(t *testing.T) {
	cases := []struct {
		typ     string
		nodes   int
		foliage int
	}{
		{"oak", 2, 1},
		{"pine", 4, 3},
		{"willow", 6, 5},
		{"palm", 7, 6},
	}

	for _, tc := range cases {
		sink := &fakeSink{}
		gen := New(sink, Options{Seed: seedPtr(99)})
		root, err := gen.GenerateArchetype(archetypeConfig(tc.typ))
		if err != nil {
			t.Errorf("%s: GenerateArchetype failed: %v", tc.typ, err)
			continue
		}
		if sink.nodes[root].name != "Trunk" {
			t.Errorf("%s: root named %q, want Trunk", tc.typ, sink.nodes[root].name)
		}
		if len(sink.nodes) != tc.nodes {
			t.Errorf("%s: %d nodes, want %d", tc.typ, len(sink.nodes), tc.nodes)
		}
		if len(sink.edges) != tc.foliage {
			t.Errorf("%s: %d foliage attachments, want %d", tc.typ, len(sink.edges), tc.foliage)
		}
		for _, e := range sink.edges {
			if e[0] != root {
				t.Errorf("%s: foliage attached to node %d, want trunk %d", tc.typ, e[0], root)
			}
		}
	}
}

func TestGenerateArchetypeAliases(t *testing.T) {
	sink := &fakeSink{}
	gen := New(sink, Options{Seed: seedPtr(1)})
	if _, err := gen.GenerateArchetype(archetypeConfig("deciduous")); err != nil {
		t.Errorf("deciduous alias rejected: %v", err)
	}
}

func TestGenerateArchetypeUnknownType(t *testing.T) {
	sink := &fakeSink{}
	gen := New(sink, Options{Seed: seedPtr(1)})
	if _, err := gen.GenerateArchetype(archetypeConfig("cactus")); err == nil {
		t.Error("expected an error for an unknown tree type")
	}
	if len(sink.nodes) != 0 {
		t.Errorf("unknown type still created %d nodes", len(sink.nodes))
	}
}

func TestGenerateArchetypeFoliageMaterial(t *testing.T) {
	sink := &fakeSink{}
	gen := New(sink, Options{Seed: seedPtr(5)})
	if _, err := gen.GenerateArchetype(archetypeConfig("oak")); err != nil {
		t.Fatalf("GenerateArchetype failed: %v", err)
	}
	if got := sink.meshes[1].material.Name; got != "Leaves" {
		t.Errorf("canopy material = %q, want Leaves", got)
	}
}
