package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAndGet(t *testing.T) {
	s := NewStore()
	s.Upsert(BlockDefinition{ID: "base-cabinet", Name: "Base Cabinet", Width: 600})

	block, ok := s.Get("base-cabinet")
	require.True(t, ok)
	assert.Equal(t, "Base Cabinet", block.Name)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestUpsertReplacesById(t *testing.T) {
	s := NewStore()
	s.Upsert(BlockDefinition{ID: "base-cabinet", Name: "Base Cabinet", Width: 600})
	s.Upsert(BlockDefinition{ID: "wall-cabinet", Name: "Wall Cabinet", Width: 600})
	s.Upsert(BlockDefinition{ID: "base-cabinet", Name: "Base Cabinet Wide", Width: 900})

	assert.Equal(t, 2, s.Len())

	block, _ := s.Get("base-cabinet")
	assert.Equal(t, "Base Cabinet Wide", block.Name)
	assert.Equal(t, float64(900), block.Width)
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Upsert(BlockDefinition{ID: "c"})
	s.Upsert(BlockDefinition{ID: "a"})
	s.Upsert(BlockDefinition{ID: "b"})
	// Replacement keeps the original slot.
	s.Upsert(BlockDefinition{ID: "c", Name: "updated"})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "updated", all[0].Name)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "b", all[2].ID)
}

func TestByCategory(t *testing.T) {
	s := NewSeededStore()

	kitchen := s.ByCategory("kitchen")
	require.NotEmpty(t, kitchen)
	for _, block := range kitchen {
		assert.Equal(t, "kitchen", block.Category)
	}
}

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()
	assert.Equal(t, len(seedBlocks), s.Len())

	sink, ok := s.Get("sink-unit")
	require.True(t, ok)
	assert.Equal(t, ModuleBase, sink.ModuleClass)
	assert.Equal(t, "SINK-900", sink.SKU)
	assert.NotEmpty(t, sink.PlanSymbols)
}

func TestSeedBlocksAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, block := range seedBlocks {
		assert.False(t, seen[block.ID], "duplicate seed id %s", block.ID)
		seen[block.ID] = true
		assert.NotEmpty(t, block.Name)
		assert.Equal(t, "furniture", block.Type)
		assert.Greater(t, block.Width, float64(0))
		assert.Greater(t, block.Height, float64(0))
		assert.NotEmpty(t, block.PlanSymbols)
		for _, shape := range block.PlanSymbols {
			switch shape.Kind {
			case "rect", "circle":
				assert.Empty(t, shape.Points)
			case "line":
				assert.Len(t, shape.Points, 4)
			default:
				t.Errorf("block %s has unknown shape kind %q", block.ID, shape.Kind)
			}
		}
	}
}
