package menu

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/storage"
)

// menuStateKey is the logical storage key for the catalog snapshot.
const menuStateKey = "menuState"

// Store holds the catalog state. Mutating operations update memory first and
// then persist the whole snapshot; persistence failures are logged and never
// surface to the caller.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	log   logging.Logger
	state State
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("store", "menu"), state: defaultState()}
}

func (s *Store) kv() storage.KV {
	return storage.NewSQLiteRepository(s.db)
}

// Load initializes the catalog from the persisted snapshot, degrading to an
// empty catalog when the snapshot is missing or corrupt.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = storage.Load(ctx, s.kv(), menuStateKey, defaultState())
}

// Reload re-reads the snapshot from storage, discarding in-memory state.
func (s *Store) Reload(ctx context.Context) {
	s.Load(ctx)
}

// AddItem appends item to the catalog. The caller supplies a fresh unique id.
// An unknown category is auto-registered.
func (s *Store) AddItem(ctx context.Context, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = append(s.state.Items, item)
	s.ensureCategory(item.Category)
	s.persist(ctx)
}

// EditItem replaces the item with a matching id in place, preserving its
// position. When no item matches, nothing happens: no state change and no
// persistence write.
func (s *Store) EditItem(ctx context.Context, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Items {
		if s.state.Items[i].ID == item.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	s.state.Items[idx] = item
	s.ensureCategory(item.Category)
	s.persist(ctx)
}

// DeleteItem removes the item with a matching id. The snapshot is persisted
// whether or not a match was found.
func (s *Store) DeleteItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Items[:0]
	for _, it := range s.state.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.state.Items = kept
	s.persist(ctx)
}

// AddCategory appends name to the category list; a duplicate is a no-op.
func (s *Store) AddCategory(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCategory(name) {
		return
	}
	s.state.Categories = append(s.state.Categories, name)
	s.persist(ctx)
}

// DeleteCategory removes name from the category list. Items referencing it
// are kept but their category field is cleared, so they become orphaned
// rather than deleted.
func (s *Store) DeleteCategory(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Categories[:0]
	for _, c := range s.state.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.state.Categories = kept

	for i := range s.state.Items {
		if s.state.Items[i].Category == name {
			s.state.Items[i].Category = ""
		}
	}
	s.persist(ctx)
}

// Item returns the item with the given id, if present.
func (s *Store) Item(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.state.Items {
		if it.ID == id {
			return copyItem(it), true
		}
	}
	return Item{}, false
}

// Items returns a copy of all items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyItems(s.state.Items)
}

// Categories returns a copy of the category list in insertion order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.state.Categories...)
}

// State returns a deep copy of the whole catalog.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Items:      copyItems(s.state.Items),
		Categories: append([]string(nil), s.state.Categories...),
	}
}

// Filter returns the items matching the given search query and category.
// The query is a case-insensitive substring match on name or description;
// an empty category matches all categories.
func (s *Store) Filter(query, category string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	matched := make([]Item, 0, len(s.state.Items))
	for _, it := range s.state.Items {
		if category != "" && it.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) {
			continue
		}
		matched = append(matched, copyItem(it))
	}
	return matched
}

// Stats reports catalog totals for the dashboard.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TotalItems:      len(s.state.Items),
		TotalCategories: len(s.state.Categories),
	}
}

// Reset wipes both in-memory state and the persisted snapshot.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = defaultState()
	if err := s.kv().Delete(ctx, menuStateKey); err != nil {
		s.log.Warn(ctx, "failed to reset menu storage", "error", err)
	}
}

// ensureCategory registers name if it is not yet present. Both item
// mutations funnel through here so auto-registration lives in one place.
// Callers must hold s.mu.
func (s *Store) ensureCategory(name string) {
	if !s.hasCategory(name) {
		s.state.Categories = append(s.state.Categories, name)
	}
}

func (s *Store) hasCategory(name string) bool {
	for _, c := range s.state.Categories {
		if c == name {
			return true
		}
	}
	return false
}

func (s *Store) persist(ctx context.Context) {
	if err := storage.Save(ctx, s.kv(), menuStateKey, s.state); err != nil {
		s.log.Warn(ctx, "failed to persist menu state", "error", err)
	}
}

func copyItem(it Item) Item {
	it.Ingredients = append([]string(nil), it.Ingredients...)
	return it
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = copyItem(it)
	}
	return out
}
