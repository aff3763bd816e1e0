package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

// StoreOpener opens the durable record store
type StoreOpener func() (ports.RecordStore, error)

// CacheConfig configures a LocalCache
type CacheConfig struct {
	MaxConcurrentWrites int
	Now                 func() time.Time
}

// EventKind identifies a change published by LocalCache
type EventKind string

const (
	EventReflectionSaved EventKind = "reflection_saved"
	EventSessionCreated  EventKind = "session_created"
	EventSessionEnded    EventKind = "session_ended"
	EventSessionSynced   EventKind = "session_synced"
)

// Event describes one change to the cached collections
type Event struct {
	Kind         EventKind
	ReflectionID string
	SessionID    string
}

const eventBuffer = 64

// LocalCache is the single writer of session and reflection state within
// a process. Memory is updated synchronously and written through to the
// record store in the background. Other processes may write the same store,
// so reads take the durable row unless this cache holds a local change that
// has not reached the store yet. When the store cannot be opened the cache
// keeps working from memory alone.
type LocalCache struct {
	mu          sync.RWMutex
	failed      map[string]bool // last write of the session failed
	pending     map[string]int  // session writes scheduled but not finished
	reflections []domain.Reflection
	revisions   map[string]uint64
	sessions    []domain.Session

	now       func() time.Time
	persistMu sync.Mutex
	store     ports.RecordStore
	tasks     *TaskRunner

	subsMu  sync.Mutex
	nextSub int
	subs    map[int]chan Event
}

// NewLocalCache opens the store through opener and loads existing records
// into memory. It never fails: an unavailable store puts the cache in
// degraded mode.
func NewLocalCache(ctx context.Context, opener StoreOpener, cfg CacheConfig) *LocalCache {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	c := &LocalCache{
		failed:    make(map[string]bool),
		now:       cfg.Now,
		pending:   make(map[string]int),
		revisions: make(map[string]uint64),
		subs:      make(map[int]chan Event),
		tasks:     NewTaskRunner(cfg.MaxConcurrentWrites),
	}

	store, err := opener()
	if err != nil {
		logging.Logger.Error("Record store unavailable, running in memory only", "error", err)
		return c
	}
	c.store = store
	c.warmUp(ctx)
	return c
}

func (c *LocalCache) warmUp(ctx context.Context) {
	sessions, err := c.store.FetchSessions(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load sessions from store", "error", err)
		return
	}
	reflections, err := c.store.FetchAllReflections(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load reflections from store", "error", err)
		return
	}

	c.mu.Lock()
	c.sessions = sessions
	c.reflections = reflections
	c.mu.Unlock()

	logging.Logger.Debug("Loaded records from store",
		"sessions", len(sessions),
		"reflections", len(reflections))
}

// Degraded reports whether the cache runs without a durable store
func (c *LocalCache) Degraded() bool {
	return c.store == nil
}

// CreateSession starts a new session now and returns it immediately
func (c *LocalCache) CreateSession(subject *string) domain.Session {
	session := domain.NewSession(subject, c.now())

	c.mu.Lock()
	c.sessions = slices.Insert(c.sessions, 0, session)
	c.revisions[session.ID]++
	c.schedulePersistLocked(session.ID)
	c.mu.Unlock()

	logging.Logger.Info("Session created", "id", session.ID, "subject", session.SubjectOr(""))
	c.persistSession(session.ID, false)
	c.publish(Event{Kind: EventSessionCreated, SessionID: session.ID})
	return session
}

// EndSession ends the cached session with the same id. It returns the
// ended copy, or false when the id is unknown.
func (c *LocalCache) EndSession(session domain.Session) (domain.Session, bool) {
	c.mu.Lock()
	i := c.sessionIndex(session.ID)
	if i < 0 {
		c.mu.Unlock()
		logging.Logger.Warn("End requested for unknown session", "id", session.ID)
		return domain.Session{}, false
	}
	ended := c.sessions[i].Ended(c.now())
	c.sessions[i] = ended
	c.revisions[ended.ID]++
	c.schedulePersistLocked(ended.ID)
	c.mu.Unlock()

	logging.Logger.Info("Session ended", "id", ended.ID, "duration", ended.Duration())
	c.persistSession(ended.ID, false)
	c.publish(Event{Kind: EventSessionEnded, SessionID: ended.ID})
	return ended, true
}

// SaveReflection records a reflection and marks its session unsynced
func (c *LocalCache) SaveReflection(reflection domain.Reflection) error {
	if err := reflection.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if j := c.reflectionIndex(reflection.ID); j >= 0 {
		existing := c.reflections[j]
		if existing.EfficiencyScore != nil && !sameScore(existing.EfficiencyScore, reflection.EfficiencyScore) {
			c.mu.Unlock()
			return fmt.Errorf("%w: reflection %s", domain.ErrScoreAlreadySet, reflection.ID)
		}
		c.reflections[j] = reflection
	} else {
		c.reflections = slices.Insert(c.reflections, 0, reflection)
	}
	if i := c.sessionIndex(reflection.SessionID); i >= 0 {
		c.sessions[i].Synced = false
	}
	c.revisions[reflection.SessionID]++
	c.schedulePersistLocked(reflection.SessionID)
	c.mu.Unlock()

	logging.Logger.Info("Reflection saved",
		"id", reflection.ID,
		"session_id", reflection.SessionID,
		"completion", reflection.Completion)

	if c.store != nil {
		c.tasks.Go("save reflection", func(ctx context.Context) error {
			return c.store.SaveReflection(ctx, reflection)
		})
	}
	c.persistSession(reflection.SessionID, false)
	c.publish(Event{Kind: EventReflectionSaved, SessionID: reflection.SessionID, ReflectionID: reflection.ID})
	return nil
}

// MarkSessionSynced flags a session as acknowledged by the remote service
func (c *LocalCache) MarkSessionSynced(id string) {
	c.mu.Lock()
	c.markSyncedLocked(id)
	c.schedulePersistLocked(id)
	c.mu.Unlock()

	c.persistSession(id, true)
	c.publish(Event{Kind: EventSessionSynced, SessionID: id})
}

// MarkSessionSyncedAt flags a session as synced only if it has not been
// mutated since revision was read. It reports whether the flag was set.
func (c *LocalCache) MarkSessionSyncedAt(id string, revision uint64) bool {
	c.mu.Lock()
	if c.revisions[id] != revision {
		c.mu.Unlock()
		logging.Logger.Debug("Session changed during upload, keeping it unsynced", "id", id)
		return false
	}
	c.markSyncedLocked(id)
	c.schedulePersistLocked(id)
	c.mu.Unlock()

	c.persistSession(id, true)
	c.publish(Event{Kind: EventSessionSynced, SessionID: id})
	return true
}

func (c *LocalCache) markSyncedLocked(id string) {
	if i := c.sessionIndex(id); i >= 0 {
		c.sessions[i].Synced = true
	}
}

// Revision returns the mutation counter of a session
func (c *LocalCache) Revision(id string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revisions[id]
}

// schedulePersistLocked counts a session write that persistSession will
// run. The caller holds c.mu and must call persistSession afterwards.
func (c *LocalCache) schedulePersistLocked(id string) {
	if c.store != nil {
		c.pending[id]++
	}
}

// persistSession writes a session change to the store. A sync mark only
// updates the flag so columns written by another process are kept. Other
// changes write the memory copy, snapshotted under persistMu so the last
// write always carries the newest state.
func (c *LocalCache) persistSession(id string, syncMark bool) {
	if c.store == nil {
		return
	}

	c.tasks.Go("save session", func(ctx context.Context) error {
		c.persistMu.Lock()
		defer c.persistMu.Unlock()

		err := c.writeSession(ctx, id, syncMark)

		c.mu.Lock()
		c.pending[id]--
		if c.pending[id] <= 0 {
			delete(c.pending, id)
		}
		if err != nil {
			c.failed[id] = true
		} else {
			delete(c.failed, id)
		}
		c.mu.Unlock()
		return err
	})
}

func (c *LocalCache) writeSession(ctx context.Context, id string, syncMark bool) error {
	if syncMark {
		// A later local change reset the flag and has its own write queued
		if session, ok := c.Session(id); ok && !session.Synced {
			return nil
		}
		return c.store.MarkSessionSynced(ctx, id)
	}
	if session, ok := c.Session(id); ok {
		return c.store.SaveSession(ctx, session)
	}

	// Not cached (warm-up failed): reset the durable row instead
	session, err := c.store.GetSession(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	session.Synced = false
	return c.store.SaveSession(ctx, *session)
}

// FetchUnsyncedSessions returns sessions awaiting upload, oldest started first
func (c *LocalCache) FetchUnsyncedSessions(ctx context.Context) []domain.Session {
	unsynced := func(s domain.Session) bool { return !s.Synced }

	before := c.revisionSnapshot()
	var rows []domain.Session
	if c.store != nil {
		var err error
		rows, err = c.store.FetchUnsyncedSessions(ctx)
		if err != nil {
			logging.Logger.Warn("Falling back to memory for unsynced sessions", "error", err)
			rows = nil
		}
	}

	result := c.mergeSessions(rows, before, unsynced)
	slices.SortStableFunc(result, func(a, b domain.Session) int {
		return cmp.Or(a.StartedAt.Compare(b.StartedAt), cmp.Compare(a.ID, b.ID))
	})
	return result
}

// FetchSessionsSince returns sessions started at or after since, newest first
func (c *LocalCache) FetchSessionsSince(ctx context.Context, since time.Time) []domain.Session {
	after := func(s domain.Session) bool { return !s.StartedAt.Before(since) }

	before := c.revisionSnapshot()
	var rows []domain.Session
	if c.store != nil {
		var err error
		rows, err = c.store.FetchSessionsSince(ctx, since)
		if err != nil {
			logging.Logger.Warn("Falling back to memory for sessions since", "since", since, "error", err)
			rows = nil
		}
	}

	result := c.mergeSessions(rows, before, after)
	slices.SortStableFunc(result, func(a, b domain.Session) int {
		return cmp.Or(b.StartedAt.Compare(a.StartedAt), cmp.Compare(a.ID, b.ID))
	})
	return result
}

// FetchReflections returns a session's reflections, newest first
func (c *LocalCache) FetchReflections(ctx context.Context, sessionID string) []domain.Reflection {
	var rows []domain.Reflection
	if c.store != nil {
		var err error
		rows, err = c.store.FetchReflections(ctx, sessionID)
		if err != nil {
			logging.Logger.Warn("Falling back to memory for reflections", "session_id", sessionID, "error", err)
			rows = nil
		}
	}

	c.mu.RLock()
	cached := make(map[string]domain.Reflection)
	for _, r := range c.reflections {
		if r.SessionID == sessionID {
			cached[r.ID] = r
		}
	}
	c.mu.RUnlock()

	result := make([]domain.Reflection, 0, len(rows)+len(cached))
	for _, r := range rows {
		if m, ok := cached[r.ID]; ok {
			r = m
			delete(cached, r.ID)
		}
		result = append(result, r)
	}
	for _, r := range cached {
		result = append(result, r)
	}

	slices.SortStableFunc(result, func(a, b domain.Reflection) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return result
}

// RefreshSession reloads one session from the store and returns the copy
// the cache now holds. It falls back to memory when the store cannot answer.
func (c *LocalCache) RefreshSession(ctx context.Context, id string) (domain.Session, bool) {
	if c.store == nil {
		return c.Session(id)
	}

	before := map[string]uint64{id: c.Revision(id)}
	row, err := c.store.GetSession(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			logging.Logger.Warn("Failed to refresh session from store", "id", id, "error", err)
		}
		return c.Session(id)
	}

	c.mergeSessions([]domain.Session{*row}, before, func(domain.Session) bool { return true })
	return c.Session(id)
}

func (c *LocalCache) revisionSnapshot() map[string]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.revisions)
}

// mergeSessions reconciles durable rows with memory. before holds the
// revisions seen before the rows were read. Memory wins for a session with
// a local change the store may not have yet; otherwise the durable row wins
// and replaces the cached copy. Sessions only in memory are kept.
func (c *LocalCache) mergeSessions(rows []domain.Session, before map[string]uint64, keep func(domain.Session) bool) []domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]domain.Session, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	inserted := false
	for _, row := range rows {
		seen[row.ID] = true
		i := c.sessionIndex(row.ID)
		switch {
		case i < 0:
			c.sessions = append(c.sessions, row)
			c.revisions[row.ID]++
			inserted = true
		case c.localAheadLocked(row.ID, before):
			row = c.sessions[i]
		case !sameSession(c.sessions[i], row):
			logging.Logger.Debug("Refreshed session from store", "id", row.ID)
			c.sessions[i] = row
			c.revisions[row.ID]++
		}
		if keep(row) {
			result = append(result, row)
		}
	}
	for _, s := range c.sessions {
		if !seen[s.ID] && keep(s) {
			result = append(result, s)
		}
	}

	if inserted {
		slices.SortStableFunc(c.sessions, func(a, b domain.Session) int {
			return b.StartedAt.Compare(a.StartedAt)
		})
	}
	return result
}

func (c *LocalCache) localAheadLocked(id string, before map[string]uint64) bool {
	return c.pending[id] > 0 || c.failed[id] || c.revisions[id] != before[id]
}

func sameSession(a, b domain.Session) bool {
	return a.ID == b.ID &&
		a.Synced == b.Synced &&
		a.StartedAt.Equal(b.StartedAt) &&
		sameTime(a.EndedAt, b.EndedAt) &&
		sameString(a.Subject, b.Subject) &&
		sameString(a.UserID, b.UserID)
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameScore(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Sessions returns a copy of the cached sessions, newest first
func (c *LocalCache) Sessions() []domain.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sessions)
}

// Reflections returns a copy of the cached reflections, newest first
func (c *LocalCache) Reflections() []domain.Reflection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.reflections)
}

// Session looks up a cached session by id
func (c *LocalCache) Session(id string) (domain.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.sessionIndex(id); i >= 0 {
		return c.sessions[i], true
	}
	return domain.Session{}, false
}

// UnsyncedCount returns how many cached sessions await upload
func (c *LocalCache) UnsyncedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, s := range c.sessions {
		if !s.Synced {
			n++
		}
	}
	return n
}

// LatestOpenSession returns the most recently started running session
func (c *LocalCache) LatestOpenSession() (domain.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var latest domain.Session
	found := false
	for _, s := range c.sessions {
		if s.IsRunning() && (!found || s.StartedAt.After(latest.StartedAt)) {
			latest = s
			found = true
		}
	}
	return latest, found
}

// Subscribe returns a channel of change events and a function that
// unsubscribes it. Events are dropped when the channel is full.
func (c *LocalCache) Subscribe() (<-chan Event, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan Event, eventBuffer)
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			c.subsMu.Unlock()
			close(ch)
		})
	}
}

func (c *LocalCache) publish(ev Event) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
			logging.Logger.Debug("Dropping event for slow subscriber", "kind", ev.Kind)
		}
	}
}

// Flush waits for pending write-through tasks
func (c *LocalCache) Flush(ctx context.Context) error {
	return c.tasks.Flush(ctx)
}

// Close flushes pending writes and closes the store
func (c *LocalCache) Close() error {
	if err := c.Flush(context.Background()); err != nil {
		return err
	}
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

func (c *LocalCache) sessionIndex(id string) int {
	return slices.IndexFunc(c.sessions, func(s domain.Session) bool { return s.ID == id })
}

func (c *LocalCache) reflectionIndex(id string) int {
	return slices.IndexFunc(c.reflections, func(r domain.Reflection) bool { return r.ID == id })
}
