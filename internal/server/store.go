package server

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/Makepad-fr/datenight/internal/model"
)

// Store is an in-memory idea collection. Nothing is written to disk.
type Store struct {
	mu     sync.Mutex
	ideas  map[int64]*model.Idea
	nextID int64
	now    func() time.Time
	pick   func(n int) int
}

// NewStore returns a store holding seed.
func NewStore(seed []model.IdeaInput) *Store {
	s := &Store{
		ideas: make(map[int64]*model.Idea),
		now:   time.Now,
		pick:  rand.Intn,
	}
	for _, in := range seed {
		s.Create(in)
	}
	return s
}

// All returns every idea ordered by id.
func (s *Store) All() []model.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Idea, 0, len(s.ideas))
	for _, idea := range s.ideas {
		out = append(out, *idea)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Random picks an idea in budget that has not been suggested yet and marks
// it suggested. ok is false when none is left.
func (s *Store) Random(budget string) (idea model.Idea, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var avail []*model.Idea
	for _, it := range s.ideas {
		if it.BudgetCategory == budget && !it.Suggested {
			avail = append(avail, it)
		}
	}
	if len(avail) == 0 {
		return model.Idea{}, false
	}
	// map order is random; sort so pick alone decides.
	sort.Slice(avail, func(i, j int) bool { return avail[i].ID < avail[j].ID })
	chosen := avail[s.pick(len(avail))]
	chosen.Suggested = true
	return *chosen, true
}

// Create stores a new idea and returns it with its id.
func (s *Store) Create(in model.IdeaInput) model.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	created := model.LocalTime{Time: s.now()}
	idea := &model.Idea{
		ID:             s.nextID,
		Title:          in.Title,
		Description:    in.Description,
		BudgetCategory: in.BudgetCategory,
		Location:       in.Location,
		CreatedAt:      &created,
	}
	s.ideas[idea.ID] = idea
	return *idea
}

// Update replaces the editable fields of id. It reports whether id exists.
func (s *Store) Update(id int64, in model.IdeaInput) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idea, ok := s.ideas[id]
	if !ok {
		return false
	}
	idea.Title = in.Title
	idea.Description = in.Description
	idea.BudgetCategory = in.BudgetCategory
	idea.Location = in.Location
	return true
}

// Delete removes id and reports whether it existed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ideas[id]; !ok {
		return false
	}
	delete(s.ideas, id)
	return true
}

// ResetSuggested makes every idea available to Random again.
func (s *Store) ResetSuggested() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, idea := range s.ideas {
		idea.Suggested = false
	}
}
