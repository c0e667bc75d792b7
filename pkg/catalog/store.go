// Package catalog provides the in-memory furniture block catalog.
package catalog

import "sync"

// Store holds block definitions keyed by id while preserving insertion
// order for listings. It is safe for concurrent use; the server owns one
// instance and injects it into the handlers that need it.
type Store struct {
	mu     sync.RWMutex
	blocks map[string]BlockDefinition
	order  []string
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{
		blocks: make(map[string]BlockDefinition),
	}
}

// NewSeededStore creates a store pre-loaded with the built-in catalog
func NewSeededStore() *Store {
	s := NewStore()
	for _, block := range seedBlocks {
		s.Upsert(block)
	}
	return s
}

// Upsert inserts a block or replaces the existing definition with the
// same id. Replacement keeps the block's original position in the listing
// order.
func (s *Store) Upsert(block BlockDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blocks[block.ID]; !exists {
		s.order = append(s.order, block.ID)
	}
	s.blocks[block.ID] = block
}

// Get returns a block by id
func (s *Store) Get(id string) (BlockDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.blocks[id]
	return block, ok
}

// All returns every block in insertion order
func (s *Store) All() []BlockDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]BlockDefinition, 0, len(s.order))
	for _, id := range s.order {
		blocks = append(blocks, s.blocks[id])
	}
	return blocks
}

// ByCategory returns blocks in the given category, insertion order
func (s *Store) ByCategory(category string) []BlockDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]BlockDefinition, 0)
	for _, id := range s.order {
		if block := s.blocks[id]; block.Category == category {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Len returns the number of blocks in the store
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}
