package presence

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/snakearcade-go/internal/model"
)

// MemorySource holds active-player snapshots in process memory. The session
// driver publishes into it; the core only reads. Suitable for single-node
// deployments and tests.
type MemorySource struct {
	mu      sync.RWMutex
	players map[string]*model.ActivePlayer
}

// NewMemorySource creates an empty in-memory snapshot source
func NewMemorySource() *MemorySource {
	return &MemorySource{players: make(map[string]*model.ActivePlayer)}
}

// Ensure MemorySource implements Source
var _ Source = (*MemorySource)(nil)

func (m *MemorySource) List(ctx context.Context) ([]*model.ActivePlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	players := make([]*model.ActivePlayer, 0, len(m.players))
	for _, p := range m.players {
		cp := *p
		players = append(players, &cp)
	}
	// Map iteration order is random; keep listings stable for readers.
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (m *MemorySource) Get(ctx context.Context, id string) (*model.ActivePlayer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[id]
	if !ok {
		return nil, ErrNotActive
	}
	cp := *p
	return &cp, nil
}

// Publish is the write hook for the session driver: it replaces the
// snapshot for the player, creating it if absent.
func (m *MemorySource) Publish(player *model.ActivePlayer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *player
	m.players[cp.ID] = &cp
}

// Remove drops a player's snapshot (session ended)
func (m *MemorySource) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, id)
}
