// Package session holds the process-wide authentication and domain state of
// the Momentum client.
//
// A Store is the single owner of the credential; the transport reads it
// through Token. Every mutator applies one in-memory replace or merge under
// the store lock, then publishes the resulting Snapshot to subscribers, in
// mutation order. Mutators never perform I/O and cannot fail.
package session

import (
	"sync"

	"github.com/dmitrijs2005/momentum/internal/client/models"
)

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Token      string
	User       *models.User
	Profile    *models.Profile
	Objectives []models.Objective
}

func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}

// Objective returns the objective with the given id.
func (s Snapshot) Objective(id int64) (models.Objective, bool) {
	for _, o := range s.Objectives {
		if o.ID == id {
			return o, true
		}
	}
	return models.Objective{}, false
}

// Listener receives the post-mutation snapshot. It runs synchronously on the
// mutating goroutine and must not call Store mutators or Subscribe.
type Listener func(Snapshot)

type Store struct {
	// pub serializes mutate-then-publish so listeners observe mutation order.
	pub sync.Mutex
	mu  sync.RWMutex

	state     Snapshot
	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{
		state:     emptyState(),
		listeners: make(map[int]Listener),
	}
}

func emptyState() Snapshot {
	return Snapshot{Objectives: []models.Objective{}}
}

func copyObjectives(src []models.Objective) []models.Objective {
	dst := make([]models.Objective, len(src))
	copy(dst, src)
	return dst
}

func (s *Store) snapshotLocked() Snapshot {
	snap := s.state
	snap.Objectives = copyObjectives(s.state.Objectives)
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	if s.state.Profile != nil {
		p := *s.state.Profile
		snap.Profile = &p
	}
	return snap
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Token returns the live credential, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Subscribe registers l for every future mutation and returns a function
// that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.pub.Lock()
	defer s.pub.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.pub.Lock()
			defer s.pub.Unlock()
			delete(s.listeners, id)
		})
	}
}

// mutate applies fn to the state and publishes the result.
func (s *Store) mutate(fn func(state *Snapshot)) Snapshot {
	s.pub.Lock()
	defer s.pub.Unlock()

	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	for _, l := range s.listeners {
		l(snap)
	}
	return snap
}

// SetCredential replaces the credential. An empty token clears it.
func (s *Store) SetCredential(token string) Snapshot {
	return s.mutate(func(st *Snapshot) { st.Token = token })
}

func (s *Store) SetUser(u *models.User) Snapshot {
	return s.mutate(func(st *Snapshot) {
		if u == nil {
			st.User = nil
			return
		}
		cp := *u
		st.User = &cp
	})
}

func (s *Store) SetProfile(p *models.Profile) Snapshot {
	return s.mutate(func(st *Snapshot) {
		if p == nil {
			st.Profile = nil
			return
		}
		cp := *p
		st.Profile = &cp
	})
}

// SetObjectives replaces the whole objective list, keeping the given order.
func (s *Store) SetObjectives(list []models.Objective) Snapshot {
	return s.mutate(func(st *Snapshot) { st.Objectives = copyObjectives(list) })
}

// UpdateObjective merges patch onto the objective with the given id. An
// unknown id leaves the list as it is.
func (s *Store) UpdateObjective(id int64, patch models.ObjectivePatch) Snapshot {
	return s.mutate(func(st *Snapshot) {
		for i := range st.Objectives {
			if st.Objectives[i].ID != id {
				continue
			}
			next := copyObjectives(st.Objectives)
			next[i] = patch.Apply(next[i])
			st.Objectives = next
			return
		}
	})
}

// Logout clears credential, user, profile and objectives in one transition.
func (s *Store) Logout() Snapshot {
	return s.mutate(func(st *Snapshot) { *st = emptyState() })
}
