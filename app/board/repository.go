package board

import (
	"sort"
	"sync"
	"time"
)

// Repository stores boards.
type Repository interface {
	FindByID(id int64) (*Board, bool)
	// FindAll returns every board, newest id first.
	FindAll() []*Board
	// Save inserts b when its ID is zero (assigning one) and replaces the
	// stored board otherwise.
	Save(b *Board) *Board
	DeleteByID(id int64) bool
}

// ── MemoryRepository ──────────────────────────────────────────────────────────

// MemoryRepository is a Repository held in process memory. Returned boards
// are copies; mutating them does not affect the store.
type MemoryRepository struct {
	mu     sync.RWMutex
	boards map[int64]Board
	nextID int64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		boards: make(map[int64]Board),
		now:    time.Now,
	}
}

func (r *MemoryRepository) FindByID(id int64) (*Board, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.boards[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (r *MemoryRepository) FindAll() []*Board {
	r.mu.RLock()
	out := make([]*Board, 0, len(r.boards))
	for _, b := range r.boards {
		out = append(out, &b)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *MemoryRepository) Save(b *Board) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if stored.ID > r.nextID {
		r.nextID = stored.ID
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	r.boards[stored.ID] = stored
	return &stored
}

func (r *MemoryRepository) DeleteByID(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boards[id]; !ok {
		return false
	}
	delete(r.boards, id)
	return true
}

// Close drops every stored board.
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = make(map[int64]Board)
	return nil
}
