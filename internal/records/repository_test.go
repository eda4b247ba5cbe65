package records

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/domain"
	"github.com/eaglepython/eagle-sub001/internal/storage"
)

var _ domain.Store = (*Repository)(nil)

func newRepo(t *testing.T, codec string) (*Repository, *storage.MemoryKV) {
	c, err := storage.NewCodec(codec)
	require.NoError(t, err)
	kv := storage.NewMemoryKV()
	return NewRepository(kv, c, zerolog.Nop()), kv
}

func TestRepository_AppendAndLoad(t *testing.T) {
	for _, codec := range []string{"json", "msgpack"} {
		t.Run(codec, func(t *testing.T) {
			repo, _ := newRepo(t, codec)

			require.NoError(t, repo.Append(domain.RecordKindTrade, domain.Trade{ID: "1", Date: "2024-06-02", Asset: "BTC", PnL: 10}))
			require.NoError(t, repo.Append(domain.RecordKindTrade, domain.Trade{ID: "2", Date: "2024-06-01", Asset: "ETH", PnL: -5}))
			require.NoError(t, repo.Append(domain.RecordKindWorkout, domain.Workout{ID: "3", Date: "2024-06-01", Type: "Run"}))

			trades := repo.Load(domain.RecordKindTrade)
			require.Len(t, trades.Trades, 2)
			// Insertion order, not date order
			assert.Equal(t, "1", trades.Trades[0].ID)
			assert.Equal(t, -5.0, trades.Trades[1].PnL)
			assert.Empty(t, trades.Workouts)

			all := repo.LoadAll()
			assert.Len(t, all.Trades, 2)
			assert.Len(t, all.Workouts, 1)
			assert.Empty(t, all.Expenses)
		})
	}
}

func TestRepository_AppendUnknownKind(t *testing.T) {
	repo, _ := newRepo(t, "json")
	assert.Error(t, repo.Append(domain.RecordKind("mood"), map[string]int{"x": 1}))
}

func TestRepository_SaveAndHistory(t *testing.T) {
	repo, _ := newRepo(t, "json")

	var latest map[string]float64
	found, err := repo.Latest("analysis", &latest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, repo.LoadHistory("analysis"))

	require.NoError(t, repo.Save("analysis", map[string]float64{"score": 5}))
	require.NoError(t, repo.Save("analysis", map[string]float64{"score": 7}))

	found, err = repo.Latest("analysis", &latest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7.0, latest["score"])

	history := repo.LoadHistory("analysis")
	require.Len(t, history, 2)
	var first map[string]float64
	require.NoError(t, repo.Decode(history[0], &first))
	assert.Equal(t, 5.0, first["score"])
	assert.False(t, history[0].SavedAt.IsZero())
}

func TestRepository_CorruptRecordIsSkipped(t *testing.T) {
	repo, kv := newRepo(t, "json")

	require.NoError(t, repo.Append(domain.RecordKindExpense, domain.Expense{ID: "ok", Date: "2024-06-01", Amount: 5, Category: "Food"}))
	require.NoError(t, kv.Append(recordsPrefix+string(domain.RecordKindExpense), []byte("{not json")))

	data := repo.Load(domain.RecordKindExpense)
	require.Len(t, data.Expenses, 1)
	assert.Equal(t, "ok", data.Expenses[0].ID)
}

// failingKV fails every operation
type failingKV struct{}

var errDown = errors.New("disk on fire")

func (failingKV) Get(string) ([]byte, error) { return nil, errDown }
func (failingKV) Put(string, []byte) error { return errDown }
func (failingKV) Append(string, []byte) error { return errDown }
func (failingKV) List(string) ([]storage.Entry, error) { return nil, errDown }
func (failingKV) Record(string, []byte) error { return errDown }

func TestRepository_StorageErrors(t *testing.T) {
	repo := NewRepository(failingKV{}, storage.JSONCodec{}, zerolog.Nop())

	assert.True(t, repo.Load(domain.RecordKindDailyScore).IsEmpty())
	assert.True(t, repo.LoadAll().IsEmpty())
	assert.NotNil(t, repo.LoadHistory("analysis"))
	assert.Empty(t, repo.LoadHistory("analysis"))

	assert.ErrorIs(t, repo.Append(domain.RecordKindTrade, domain.Trade{}), errDown)
	assert.ErrorIs(t, repo.Save("analysis", 1), errDown)

	_, err := repo.Latest("analysis", new(int))
	assert.ErrorIs(t, err, errDown)
}
