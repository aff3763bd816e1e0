package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
	portsmocks "studyflow/internal/ports/mocks"
)

// recordingUploader records every upload and fails the ids in fail
type recordingUploader struct {
	mu       sync.Mutex
	fail     map[string]bool
	failAll  bool
	onUpload func(ctx context.Context, s domain.Session) error
	refuse   bool
	uploads  []domain.Session
	withRefl map[string]int
}

func newRecordingUploader() *recordingUploader {
	return &recordingUploader{fail: map[string]bool{}, withRefl: map[string]int{}}
}

func (u *recordingUploader) UploadSession(ctx context.Context, s domain.Session, reflections []domain.Reflection) (bool, error) {
	u.mu.Lock()
	u.uploads = append(u.uploads, s)
	u.withRefl[s.ID] = len(reflections)
	hook := u.onUpload
	fail := u.failAll || u.fail[s.ID]
	refuse := u.refuse
	u.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, s); err != nil {
			return false, err
		}
	}
	if fail {
		return false, fmt.Errorf("%w: connection refused", domain.ErrNetwork)
	}
	return !refuse, nil
}

func (u *recordingUploader) UploadReflection(ctx context.Context, r domain.Reflection) (bool, error) {
	return true, nil
}

func (u *recordingUploader) SubmitReflection(ctx context.Context, r domain.Reflection) (float64, error) {
	return 0, fmt.Errorf("%w: not supported", domain.ErrNetwork)
}

func (u *recordingUploader) setFailAll(v bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failAll = v
}

func (u *recordingUploader) uploadedIDs() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	ids := make([]string, len(u.uploads))
	for i, s := range u.uploads {
		ids[i] = s.ID
	}
	return ids
}

func (u *recordingUploader) uploadCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.uploads)
}

func (u *recordingUploader) lastUpload() domain.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploads[len(u.uploads)-1]
}

func memoryCache() *LocalCache {
	return NewLocalCache(context.Background(), unavailableOpener, CacheConfig{Now: steppingClock()})
}

func fastSyncConfig() SyncConfig {
	return SyncConfig{
		Interval: time.Millisecond,
		MaxDelay: 8 * time.Millisecond,
		MinDelay: time.Millisecond,
	}
}

func TestPerformSync_NothingToSync(t *testing.T) {
	uploader := newRecordingUploader()
	worker := NewSyncWorker(memoryCache(), uploader, DefaultSyncConfig())

	assert.True(t, worker.PerformSync(context.Background()))
	assert.Zero(t, uploader.uploadCount())
}

func TestPerformSync_UploadsOldestFirstAndMarksSynced(t *testing.T) {
	cache := memoryCache()
	first := cache.CreateSession(subject("first"))
	second := cache.CreateSession(subject("second"))
	require.NoError(t, cache.SaveReflection(newReflection(t, second.ID, testStart)))

	uploader := newRecordingUploader()
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.True(t, worker.PerformSync(context.Background()))
	assert.Equal(t, []string{first.ID, second.ID}, uploader.uploadedIDs())
	assert.Equal(t, 1, uploader.withRefl[second.ID], "reflections travel with their session")
	assert.Zero(t, cache.UnsyncedCount())
	assert.Empty(t, cache.FetchUnsyncedSessions(context.Background()))
}

func TestPerformSync_ContinuesPastFailures(t *testing.T) {
	cache := memoryCache()
	a := cache.CreateSession(nil)
	b := cache.CreateSession(nil)
	c := cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.fail[b.ID] = true
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.False(t, worker.PerformSync(context.Background()))
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, uploader.uploadedIDs())

	unsynced := cache.FetchUnsyncedSessions(context.Background())
	require.Len(t, unsynced, 1)
	assert.Equal(t, b.ID, unsynced[0].ID)
}

func TestPerformSync_RefusedUploadIsFailure(t *testing.T) {
	cache := memoryCache()
	cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.refuse = true
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.False(t, worker.PerformSync(context.Background()))
	assert.Equal(t, 1, cache.UnsyncedCount())
}

func TestPerformSync_CancelledBeforeStart(t *testing.T) {
	cache := memoryCache()
	cache.CreateSession(nil)

	uploader := newRecordingUploader()
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, worker.PerformSync(ctx))
	assert.Zero(t, uploader.uploadCount())
	assert.Equal(t, 1, cache.UnsyncedCount())
}

func TestPerformSync_CancelledMidPass(t *testing.T) {
	cache := memoryCache()
	first := cache.CreateSession(nil)
	cache.CreateSession(nil)
	cache.CreateSession(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uploader := newRecordingUploader()
	uploader.onUpload = func(ctx context.Context, s domain.Session) error {
		cancel()
		return nil
	}
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.False(t, worker.PerformSync(ctx))
	assert.Equal(t, []string{first.ID}, uploader.uploadedIDs())

	// The upload that completed is still acknowledged
	synced, ok := cache.Session(first.ID)
	require.True(t, ok)
	assert.True(t, synced.Synced)
	assert.Equal(t, 2, cache.UnsyncedCount())
}

func TestPerformSync_ReflectionDuringUploadKeepsSessionUnsynced(t *testing.T) {
	cache := memoryCache()
	s := cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.onUpload = func(ctx context.Context, uploaded domain.Session) error {
		return cache.SaveReflection(newReflection(t, uploaded.ID, testStart))
	}
	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.True(t, worker.PerformSync(context.Background()))

	unsynced := cache.FetchUnsyncedSessions(context.Background())
	require.Len(t, unsynced, 1)
	assert.Equal(t, s.ID, unsynced[0].ID)
	assert.Zero(t, uploader.withRefl[s.ID], "the reflection missed this upload")
}

func TestPerformSync_UploadsLatestSessionState(t *testing.T) {
	cache := memoryCache()
	s := cache.CreateSession(nil)
	cache.EndSession(s)

	uploader := portsmocks.NewMockUploader(t)
	uploader.EXPECT().
		UploadSession(mock.Anything, mock.MatchedBy(func(got domain.Session) bool {
			return got.ID == s.ID && got.EndedAt != nil
		}), mock.Anything).
		Return(true, nil).
		Once()

	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.True(t, worker.PerformSync(context.Background()))
	assert.Zero(t, cache.UnsyncedCount())
}

func TestPerformSync_NetworkErrorWithMock(t *testing.T) {
	cache := memoryCache()
	s := cache.CreateSession(nil)

	uploader := portsmocks.NewMockUploader(t)
	uploader.EXPECT().UploadSession(mock.Anything, mock.Anything, mock.Anything).
		Return(false, domain.ErrNetwork)

	worker := NewSyncWorker(cache, uploader, DefaultSyncConfig())

	assert.False(t, worker.PerformSync(context.Background()))
	got, _ := cache.Session(s.ID)
	assert.False(t, got.Synced)
}

func TestSyncWorker_NextDelaySchedule(t *testing.T) {
	worker := NewSyncWorker(memoryCache(), newRecordingUploader(), SyncConfig{
		Interval: 30 * time.Second,
		MaxDelay: 300 * time.Second,
		MinDelay: time.Second,
	})

	expected := []time.Duration{60 * time.Second, 120 * time.Second, 240 * time.Second, 300 * time.Second, 300 * time.Second}
	for i, want := range expected {
		assert.Equal(t, want, worker.nextDelay(false), "failure %d", i+1)
	}
	assert.Equal(t, 5, worker.ConsecutiveFailures())

	assert.Equal(t, 30*time.Second, worker.nextDelay(true))
	assert.Zero(t, worker.ConsecutiveFailures())
	assert.Equal(t, 30*time.Second, worker.CurrentDelay())
}

func TestSyncWorker_BacksOffThenRecovers(t *testing.T) {
	cache := memoryCache()
	s := cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.setFailAll(true)
	cfg := fastSyncConfig()
	worker := NewSyncWorker(cache, uploader, cfg)

	worker.Start(context.Background())
	defer worker.Stop()

	assert.Eventually(t, func() bool { return worker.ConsecutiveFailures() >= 3 }, 2*time.Second, time.Millisecond)
	assert.LessOrEqual(t, worker.CurrentDelay(), cfg.MaxDelay)

	uploader.setFailAll(false)

	assert.Eventually(t, func() bool {
		got, _ := cache.Session(s.ID)
		return got.Synced && worker.ConsecutiveFailures() == 0
	}, 2*time.Second, time.Millisecond)
}

func TestSyncWorker_StartIsIdempotent(t *testing.T) {
	cache := memoryCache()
	cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.setFailAll(true)
	worker := NewSyncWorker(cache, uploader, fastSyncConfig())

	worker.Start(context.Background())
	worker.Start(context.Background())
	assert.True(t, worker.Running())

	assert.Eventually(t, func() bool { return uploader.uploadCount() > 0 }, time.Second, time.Millisecond)

	worker.Stop()
	assert.False(t, worker.Running())

	// No loop survives the single Stop
	count := uploader.uploadCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, uploader.uploadCount())

	worker.Stop()
}

func TestSyncWorker_StopCancelsPendingWait(t *testing.T) {
	cache := memoryCache()
	cache.CreateSession(nil)

	uploader := newRecordingUploader()
	worker := NewSyncWorker(cache, uploader, SyncConfig{
		Interval: time.Hour,
		MaxDelay: time.Hour,
		MinDelay: time.Millisecond,
	})

	worker.Start(context.Background())
	assert.Eventually(t, func() bool { return uploader.uploadCount() == 1 }, time.Second, time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		worker.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not interrupt the wait")
	}
	assert.False(t, worker.Running())
}

func TestSyncWorker_StopCancelsInFlightUpload(t *testing.T) {
	cache := memoryCache()
	s := cache.CreateSession(nil)

	started := make(chan struct{})
	uploader := newRecordingUploader()
	uploader.onUpload = func(ctx context.Context, _ domain.Session) error {
		close(started)
		<-ctx.Done()
		return fmt.Errorf("%w: %w", domain.ErrNetwork, ctx.Err())
	}
	worker := NewSyncWorker(cache, uploader, fastSyncConfig())

	worker.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the upload")
	}

	got, _ := cache.Session(s.ID)
	assert.False(t, got.Synced)
}

func TestSyncWorker_ParentContextEndsLoop(t *testing.T) {
	worker := NewSyncWorker(memoryCache(), newRecordingUploader(), fastSyncConfig())
	ctx, cancel := context.WithCancel(context.Background())

	worker.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return !worker.Running() }, time.Second, time.Millisecond)
	worker.Stop()
}

// sharedStoreCaches opens two caches on one database file, as the daemon
// and a one-shot command do
func sharedStoreCaches(t *testing.T) (daemon *LocalCache, openOther func() *LocalCache, dbPath string) {
	t.Helper()
	opener, dbPath := sqliteOpener(t)
	daemon = NewLocalCache(context.Background(), opener, CacheConfig{Now: steppingClock()})
	require.False(t, daemon.Degraded())
	t.Cleanup(func() { daemon.Close() })

	openOther = func() *LocalCache {
		other := NewLocalCache(context.Background(), opener, CacheConfig{Now: steppingClock()})
		require.False(t, other.Degraded())
		return other
	}
	return daemon, openOther, dbPath
}

func TestPerformSync_ReuploadsSessionReflectedByOtherProcess(t *testing.T) {
	daemon, openOther, dbPath := sharedStoreCaches(t)
	ctx := context.Background()

	s := daemon.CreateSession(subject("Physics"))
	uploader := newRecordingUploader()
	worker := NewSyncWorker(daemon, uploader, DefaultSyncConfig())

	require.True(t, worker.PerformSync(ctx))
	require.NoError(t, daemon.Flush(ctx))

	other := openOther()
	require.NoError(t, other.SaveReflection(newReflection(t, s.ID, testStart.Add(time.Hour))))
	require.NoError(t, other.Close())

	stored, err := openStore(t, dbPath).GetSession(ctx, s.ID)
	require.NoError(t, err)
	require.False(t, stored.Synced)

	unsynced := daemon.FetchUnsyncedSessions(ctx)
	require.Len(t, unsynced, 1)
	assert.Equal(t, s.ID, unsynced[0].ID)

	require.True(t, worker.PerformSync(ctx))
	assert.Equal(t, []string{s.ID, s.ID}, uploader.uploadedIDs())
	assert.Equal(t, 1, uploader.withRefl[s.ID], "the new reflection travels with the upload")

	require.NoError(t, daemon.Flush(ctx))
	stored, err = openStore(t, dbPath).GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
}

func TestPerformSync_KeepsEndWrittenByOtherProcess(t *testing.T) {
	daemon, openOther, dbPath := sharedStoreCaches(t)
	ctx := context.Background()

	s := daemon.CreateSession(subject("Chemistry"))
	require.NoError(t, daemon.Flush(ctx))

	other := openOther()
	_, ok := other.EndSession(s)
	require.True(t, ok)
	require.NoError(t, other.Close())

	uploader := newRecordingUploader()
	worker := NewSyncWorker(daemon, uploader, DefaultSyncConfig())

	require.True(t, worker.PerformSync(ctx))
	require.Equal(t, 1, uploader.uploadCount())
	assert.NotNil(t, uploader.lastUpload().EndedAt, "the ended copy is uploaded")

	require.NoError(t, daemon.Flush(ctx))
	stored, err := openStore(t, dbPath).GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.EndedAt, "end time survives the sync mark")
	assert.True(t, stored.Synced)

	cached, ok := daemon.Session(s.ID)
	require.True(t, ok)
	assert.False(t, cached.IsRunning())
}

func TestSyncWorker_RestartClearsBackoff(t *testing.T) {
	cache := memoryCache()
	cache.CreateSession(nil)

	uploader := newRecordingUploader()
	uploader.setFailAll(true)
	worker := NewSyncWorker(cache, uploader, SyncConfig{
		Interval: 10 * time.Minute,
		MaxDelay: time.Hour,
		MinDelay: time.Millisecond,
	})

	// Failures left over from an earlier run
	for range 3 {
		worker.nextDelay(false)
	}
	require.Equal(t, time.Hour, worker.CurrentDelay())

	worker.Start(context.Background())
	defer worker.Stop()

	assert.Eventually(t, func() bool {
		return worker.ConsecutiveFailures() == 1 && worker.CurrentDelay() == 20*time.Minute
	}, time.Second, time.Millisecond)
}
