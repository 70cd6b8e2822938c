package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/uxlab/internal/store"
)

// memStorage is an in-memory Storage that counts writes.
type memStorage struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memStorage) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memStorage) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memStorage) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func openTest(t *testing.T, storage Storage) *Store {
	t.Helper()
	return Open(context.Background(), storage, Config{Logger: zaptest.NewLogger(t)})
}

func TestOpenEmptyStorage(t *testing.T) {
	s := openTest(t, &memStorage{})
	snap := s.Snapshot()

	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, LevelNovice, snap.Level)
	assert.Empty(t, snap.CompletedLessons())
	assert.Empty(t, snap.QuizResults)
}

func TestOpenNilStorage(t *testing.T) {
	s := Open(context.Background(), nil, Config{})
	s.AddExperience(context.Background(), 300)
	assert.Equal(t, LevelApprentice, s.Snapshot().Level)
}

func TestAddExperienceAccumulates(t *testing.T) {
	pairs := [][2]int{{0, 0}, {100, 99}, {150, 50}, {199, 1}, {250, 250}, {1, 0}}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("%d+%d", p[0], p[1]), func(t *testing.T) {
			s := openTest(t, &memStorage{})
			ctx := context.Background()
			s.AddExperience(ctx, p[0])
			s.AddExperience(ctx, p[1])

			snap := s.Snapshot()
			assert.Equal(t, p[0]+p[1], snap.Experience)
			assert.Equal(t, LevelFor(p[0]+p[1]), snap.Level)
		})
	}
}

func TestAddExperienceZeroStillPersists(t *testing.T) {
	storage := &memStorage{}
	s := openTest(t, storage)

	var calls int
	s.Subscribe(func(Snapshot) { calls++ })
	s.AddExperience(context.Background(), 0)

	assert.Equal(t, 1, storage.saveCount())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Snapshot().Experience)
}

func TestAddExperienceNegativeIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	storage := &memStorage{}
	s := Open(context.Background(), storage, Config{Logger: zap.New(core)})
	ctx := context.Background()

	s.AddExperience(ctx, 100)
	s.AddExperience(ctx, -40)

	assert.Equal(t, 100, s.Snapshot().Experience)
	assert.Equal(t, 1, storage.saveCount())
	assert.Equal(t, 1, logs.FilterMessageSnippet("negative").Len())
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	storage := &memStorage{}
	s := openTest(t, storage)

	var calls int
	s.Subscribe(func(Snapshot) { calls++ })

	ctx := context.Background()
	s.MarkLessonComplete(ctx, "fitts")
	s.MarkLessonComplete(ctx, "fitts")

	assert.Equal(t, []string{"fitts"}, s.Snapshot().CompletedLessons())
	assert.Equal(t, 1, storage.saveCount())
	assert.Equal(t, 1, calls)
}

func TestRecordQuizResultOverwrites(t *testing.T) {
	s := openTest(t, &memStorage{})
	ctx := context.Background()

	s.RecordQuizResult(ctx, "hicks", false)
	passed, ok := s.Snapshot().QuizResult("hicks")
	require.True(t, ok)
	assert.False(t, passed)

	s.RecordQuizResult(ctx, "hicks", true)
	passed, ok = s.Snapshot().QuizResult("hicks")
	require.True(t, ok)
	assert.True(t, passed)
}

func TestResetReturnsToZero(t *testing.T) {
	storage := &memStorage{}
	s := openTest(t, storage)
	ctx := context.Background()

	s.AddExperience(ctx, 700)
	s.MarkLessonComplete(ctx, "fitts")
	s.RecordQuizResult(ctx, "fitts", true)
	s.Reset(ctx)

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, LevelNovice, snap.Level)
	assert.Empty(t, snap.CompletedLessons())
	assert.Empty(t, snap.QuizResults)

	reopened := openTest(t, storage)
	assert.Equal(t, 0, reopened.Snapshot().Experience)
	assert.Empty(t, reopened.Snapshot().CompletedLessons())
}

func TestIsFresh(t *testing.T) {
	ctx := context.Background()

	s := openTest(t, &memStorage{})
	assert.True(t, s.Snapshot().IsFresh())

	s.RecordQuizResult(ctx, "fitts", false)
	assert.False(t, s.Snapshot().IsFresh(), "a failed attempt still counts")

	s.Reset(ctx)
	assert.True(t, s.Snapshot().IsFresh())
}

func TestStateSurvivesReopen(t *testing.T) {
	storage := &memStorage{}
	ctx := context.Background()

	s := openTest(t, storage)
	s.AddExperience(ctx, 300)
	s.MarkLessonComplete(ctx, "millers")
	s.RecordQuizResult(ctx, "millers", true)
	s.RecordQuizResult(ctx, "hicks", false)

	reopened := openTest(t, storage).Snapshot()
	assert.Equal(t, 300, reopened.Experience)
	assert.Equal(t, LevelApprentice, reopened.Level)
	assert.True(t, reopened.IsComplete("millers"))
	assert.Equal(t, map[string]bool{"millers": true, "hicks": false}, reopened.QuizResults)
}

func TestPersistedLayout(t *testing.T) {
	storage := &memStorage{}
	s := openTest(t, storage)
	ctx := context.Background()

	s.AddExperience(ctx, 200)
	s.MarkLessonComplete(ctx, "fitts")

	assert.JSONEq(t,
		`{"experience":200,"level":"Apprentice","completedLessons":["fitts"],"quizResults":{}}`,
		string(storage.data),
	)
}

func TestLoadRecomputesStaleLevel(t *testing.T) {
	storage := &memStorage{data: []byte(`{"experience":520,"level":"Novice","completedLessons":null}`)}
	snap := openTest(t, storage).Snapshot()

	assert.Equal(t, 520, snap.Experience)
	assert.Equal(t, LevelUXArchitect, snap.Level)
	assert.Empty(t, snap.CompletedLessons())
	assert.NotNil(t, snap.QuizResults)
}

func TestLoadClampsNegativeExperience(t *testing.T) {
	storage := &memStorage{data: []byte(`{"experience":-30}`)}
	snap := openTest(t, storage).Snapshot()
	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, LevelNovice, snap.Level)
}

func TestLoadCorruptFallsBackToDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	storage := &memStorage{data: []byte(`{not json`)}
	s := Open(context.Background(), storage, Config{Logger: zap.New(core)})

	assert.Equal(t, 0, s.Snapshot().Experience)
	assert.Equal(t, 1, logs.FilterMessageSnippet("corrupt").Len())
}

func TestLoadErrorFallsBackToDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	storage := &memStorage{loadErr: errors.New("disk gone")}
	s := Open(context.Background(), storage, Config{Logger: zap.New(core)})

	assert.Equal(t, LevelNovice, s.Snapshot().Level)
	assert.Equal(t, 1, logs.Len())
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	storage := &memStorage{saveErr: errors.New("read-only")}
	s := Open(context.Background(), storage, Config{Logger: zap.New(core)})

	var seen []int
	s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.Experience) })

	require.NotPanics(t, func() { s.AddExperience(context.Background(), 100) })

	assert.Equal(t, 100, s.Snapshot().Experience)
	assert.Equal(t, []int{100}, seen)
	assert.Equal(t, 1, logs.FilterMessageSnippet("persist").Len())
}

func TestSnapshotIsCopy(t *testing.T) {
	s := openTest(t, &memStorage{})
	ctx := context.Background()
	s.RecordQuizResult(ctx, "fitts", true)

	snap := s.Snapshot()
	snap.QuizResults["fitts"] = false
	snap.QuizResults["hicks"] = true
	snap.Experience = 9000

	fresh := s.Snapshot()
	assert.True(t, fresh.QuizResults["fitts"])
	assert.NotContains(t, fresh.QuizResults, "hicks")
	assert.Equal(t, 0, fresh.Experience)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := openTest(t, &memStorage{})
	ctx := context.Background()

	var levels []Level
	unsubscribe := s.Subscribe(func(snap Snapshot) { levels = append(levels, snap.Level) })

	s.AddExperience(ctx, 150)
	s.AddExperience(ctx, 100)
	unsubscribe()
	s.AddExperience(ctx, 400)

	assert.Equal(t, []Level{LevelNovice, LevelApprentice}, levels)
}

func TestSubscribersRunInRegistrationOrder(t *testing.T) {
	s := openTest(t, &memStorage{})
	ctx := context.Background()

	var order []int
	var unsubs []func()
	for i := range 8 {
		unsubs = append(unsubs, s.Subscribe(func(Snapshot) { order = append(order, i) }))
	}

	for range 5 {
		order = nil
		s.AddExperience(ctx, 10)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
	}

	unsubs[3]()
	order = nil
	s.AddExperience(ctx, 10)
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7}, order)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := openTest(t, &memStorage{})

	var got int
	s.Subscribe(func(Snapshot) { got = s.Snapshot().Experience })
	s.AddExperience(context.Background(), 42)

	assert.Equal(t, 42, got)
}

func TestConcurrentAwards(t *testing.T) {
	s := openTest(t, &memStorage{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddExperience(ctx, 10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, s.Snapshot().Experience)
	assert.Equal(t, LevelUXArchitect, s.Snapshot().Level)
}

func TestKVStorageRoundTrip(t *testing.T) {
	name := strings.NewReplacer("/", "_").Replace(t.Name())
	db, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	s := openTest(t, NewKVStorage(db.KVRepo()))
	s.AddExperience(ctx, 250)
	s.MarkLessonComplete(ctx, "doherty")

	raw, err := db.KVRepo().Get(ctx, "heuristics-game")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"experience":250`)

	reopened := openTest(t, NewKVStorage(db.KVRepo())).Snapshot()
	assert.Equal(t, 250, reopened.Experience)
	assert.True(t, reopened.IsComplete("doherty"))
}
