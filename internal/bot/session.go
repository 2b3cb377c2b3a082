package bot

import (
	"sync"
	"time"

	"github.com/fintrackbot/fintrack/internal/transaction"
)

// State is the per-chat position in the add-transaction conversation.
type State int

const (
	StateIdle State = iota
	StateSelectingCategory
	StateEnteringAmount
	StateEnteringDescription
)

func (s State) String() string {
	switch s {
	case StateSelectingCategory:
		return "selecting_category"
	case StateEnteringAmount:
		return "entering_amount"
	case StateEnteringDescription:
		return "entering_description"
	default:
		return "idle"
	}
}

// Session is the in-memory draft of one add-transaction flow. Nothing is
// persisted until the final step commits through the ledger.
type Session struct {
	ChatID     int64
	UserID     int64
	State      State
	TxType     transaction.Type
	CategoryID int64
	Amount     float64
	UpdatedAt  time.Time
}

// SessionStore keeps conversation drafts keyed by chat, dropping the
// ones idle past the configured timeout.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[int64]*Session
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

// Get returns a snapshot of the session for a chat, or nil when there is
// none or it has expired. Expired sessions are discarded on access. The
// stored session never escapes the store lock: per-update goroutines
// would otherwise read it while Update mutates it.
func (s *SessionStore) Get(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil
	}
	if s.ttl > 0 && s.now().Sub(session.UpdatedAt) > s.ttl {
		delete(s.sessions, chatID)
		return nil
	}
	snapshot := *session
	return &snapshot
}

// Begin starts a fresh flow for a chat, replacing any previous draft, and
// returns a snapshot of it.
func (s *SessionStore) Begin(chatID, userID int64, txType transaction.Type) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ChatID:    chatID,
		UserID:    userID,
		State:     StateSelectingCategory,
		TxType:    txType,
		UpdatedAt: s.now(),
	}
	s.sessions[chatID] = session

	snapshot := *session
	return &snapshot
}

// Update applies a mutation to a chat's session under the store lock and
// refreshes its idle deadline.
func (s *SessionStore) Update(chatID int64, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return
	}
	fn(session)
	session.UpdatedAt = s.now()
}

// End discards a chat's draft, if any.
func (s *SessionStore) End(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
