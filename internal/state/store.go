// Package state owns the visitor's bookmarks and belief votes. Every
// mutation is flushed to the persistence adapter before the method returns;
// the in-memory copy stays authoritative when a flush fails.
package state

import (
	"maps"
	"slices"

	"github.com/yamiarchive/yami/internal/persist"
)

// EventKind names the collection an Event changed.
type EventKind int

const (
	BookmarkChanged EventKind = iota
	BeliefChanged
)

type Event struct {
	Kind       EventKind
	ID         string
	Bookmarked bool
	Vote       Vote
}

// Store is not safe for concurrent use; it is driven from a single event loop.
type Store struct {
	adapter   *persist.Adapter
	bookmarks []string
	belief    map[string]Vote

	subs   map[int]func(Event)
	nextID int
}

// New loads bookmarks and beliefs through adapter.
func New(adapter *persist.Adapter) *Store {
	s := &Store{
		adapter: adapter,
		belief:  map[string]Vote{},
		subs:    map[int]func(Event){},
	}

	seen := map[string]bool{}
	for _, id := range persist.Load(adapter, persist.KeyBookmarks, []string{}) {
		if seen[id] {
			continue
		}
		seen[id] = true
		s.bookmarks = append(s.bookmarks, id)
	}

	for id, v := range persist.Load(adapter, persist.KeyBelief, map[string]Vote{}) {
		if v.Valid() {
			s.belief[id] = v
		}
	}
	return s
}

// ToggleBookmark adds id when absent and removes it when present, returning
// the new membership. Ids are not checked against the catalog.
func (s *Store) ToggleBookmark(id string) bool {
	var added bool
	if i := slices.Index(s.bookmarks, id); i >= 0 {
		s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
	} else {
		s.bookmarks = append(s.bookmarks, id)
		added = true
	}

	s.adapter.Save(persist.KeyBookmarks, s.bookmarksForSave())
	s.notify(Event{Kind: BookmarkChanged, ID: id, Bookmarked: added})
	return added
}

func (s *Store) IsBookmarked(id string) bool {
	return slices.Contains(s.bookmarks, id)
}

// Bookmarks returns the bookmarked ids in insertion order.
func (s *Store) Bookmarks() []string {
	return slices.Clone(s.bookmarks)
}

// SetBelief records v for id, replacing any earlier vote. There is no way
// back to "not voted".
func (s *Store) SetBelief(id string, v Vote) {
	s.belief[id] = v
	s.adapter.Save(persist.KeyBelief, s.belief)
	s.notify(Event{Kind: BeliefChanged, ID: id, Vote: v})
}

func (s *Store) Belief(id string) (Vote, bool) {
	v, ok := s.belief[id]
	return v, ok
}

func (s *Store) Beliefs() map[string]Vote {
	return maps.Clone(s.belief)
}

// Counts tallies bookmarks and votes by stance.
func (s *Store) Counts() (bookmarks, believe, disbelieve int) {
	for _, v := range s.belief {
		switch v {
		case Believe:
			believe++
		case Disbelieve:
			disbelieve++
		}
	}
	return len(s.bookmarks), believe, disbelieve
}

// Subscribe registers fn to run after every mutation. The returned func
// removes it.
func (s *Store) Subscribe(fn func(Event)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// LastSaveError exposes the most recent swallowed persistence failure.
func (s *Store) LastSaveError() error {
	return s.adapter.LastError()
}

func (s *Store) notify(e Event) {
	keys := slices.Sorted(maps.Keys(s.subs))
	for _, k := range keys {
		if fn, ok := s.subs[k]; ok {
			fn(e)
		}
	}
}

func (s *Store) bookmarksForSave() []string {
	if s.bookmarks == nil {
		return []string{}
	}
	return s.bookmarks
}
