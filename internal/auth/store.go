package auth

import (
	"context"
	"database/sql"
	"sync"

	"github.com/avolkovs/menuboard/internal/dbx"
	"github.com/avolkovs/menuboard/internal/logging"
	"github.com/avolkovs/menuboard/internal/storage"
)

// Persisted snapshot keys.
const (
	usersKey     = "users"
	authStateKey = "authState"
)

// Messages surfaced through Session.Error.
const (
	MsgUsernameExists     = "Username already exists."
	MsgInvalidCredentials = "Invalid username or password."
)

// Store holds the user registry and the current session. All operations are
// total: they never fail from the caller's perspective, domain errors land
// in Session.Error and persistence failures are logged as best-effort.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	log     logging.Logger
	users   []User
	session Session
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("store", "auth")}
}

func (s *Store) kv() storage.KV {
	return storage.NewSQLiteRepository(s.db)
}

// Load initializes in-memory state from the persisted snapshots. Missing or
// corrupt snapshots degrade to an empty registry and a logged-out session.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv := s.kv()
	s.users = storage.Load(ctx, kv, usersKey, []User{})
	s.session = storage.Load(ctx, kv, authStateKey, Session{})
}

// Register adds candidate to the registry and logs it in. If the username is
// already taken the registry stays unchanged, Session.Error is set to
// MsgUsernameExists and the rest of the session is left as it was.
func (s *Store) Register(ctx context.Context, candidate User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == candidate.Username {
			s.session.Error = MsgUsernameExists
			s.persistSession(ctx, s.kv())
			return
		}
	}

	s.users = append(s.users, candidate)
	s.session = Session{IsAuthenticated: true, CurrentUser: &candidate}

	// Registry and session snapshots go together or not at all.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteRepository(tx)
		if err := storage.Save(ctx, kv, usersKey, s.users); err != nil {
			return err
		}
		return storage.Save(ctx, kv, authStateKey, s.session)
	})
	if err != nil {
		s.log.Warn(ctx, "failed to persist registration", "username", candidate.Username, "error", err)
	}
}

// Login authenticates against the registry: exact username and password
// match. The session always reflects the outcome and is always persisted.
func (s *Store) Login(ctx context.Context, username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched *User
	for i := range s.users {
		if s.users[i].Username == username && s.users[i].Password == password {
			matched = &s.users[i]
			break
		}
	}

	if matched != nil {
		u := *matched
		s.session = Session{IsAuthenticated: true, CurrentUser: &u}
	} else {
		s.session = Session{Error: MsgInvalidCredentials}
	}
	s.persistSession(ctx, s.kv())
}

// Logout unconditionally resets the session to its logged-out default.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}
	s.persistSession(ctx, s.kv())
}

// ClearError clears Session.Error. The UI calls this after it has shown the
// error so the same failure is not reported twice.
func (s *Store) ClearError(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Error = ""
	s.persistSession(ctx, s.kv())
}

// Session returns a copy of the current session.
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess.CurrentUser != nil {
		u := *sess.CurrentUser
		sess.CurrentUser = &u
	}
	return sess
}

// Users returns a copy of the registry.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]User(nil), s.users...)
}

// IsAuthenticated is the session gate guarding protected views.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.IsAuthenticated
}

// Reset wipes both in-memory state and the persisted snapshots.
// Intended for tests and for a full console reset.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.session = Session{}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := storage.NewSQLiteRepository(tx)
		if err := kv.Delete(ctx, usersKey); err != nil {
			return err
		}
		return kv.Delete(ctx, authStateKey)
	})
	if err != nil {
		s.log.Warn(ctx, "failed to reset auth storage", "error", err)
	}
}

func (s *Store) persistSession(ctx context.Context, kv storage.KV) {
	if err := storage.Save(ctx, kv, authStateKey, s.session); err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}
}
