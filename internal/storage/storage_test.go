package storage

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglepython/eagle-sub001/internal/database"
	"github.com/eaglepython/eagle-sub001/internal/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(database.Schema)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stores(t *testing.T) map[string]KV {
	return map[string]KV{
		"sqlite": NewSQLiteKV(setupTestDB(t)),
		"memory": NewMemoryKV(),
	}
}

func TestKV_GetPut(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Put("a", []byte("one")))
			require.NoError(t, kv.Put("a", []byte("two")))

			got, err := kv.Get("a")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), got)
		})
	}
}

func TestKV_AppendAndList(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			entries, err := kv.List("empty")
			require.NoError(t, err)
			assert.Empty(t, entries)

			for _, v := range []string{"first", "second", "third"} {
				require.NoError(t, kv.Append("log", []byte(v)))
			}
			require.NoError(t, kv.Append("other", []byte("elsewhere")))

			entries, err = kv.List("log")
			require.NoError(t, err)
			require.Len(t, entries, 3)
			assert.Equal(t, []byte("first"), entries[0].Value)
			assert.Equal(t, []byte("third"), entries[2].Value)
			assert.False(t, entries[0].CreatedAt.IsZero())

			// Lists do not leak into keys
			_, err = kv.Get("log")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKV_Record(t *testing.T) {
	for name, kv := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Record("analysis", []byte("v1")))
			require.NoError(t, kv.Record("analysis", []byte("v2")))

			latest, err := kv.Get("analysis")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), latest)

			history, err := kv.List("analysis")
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, []byte("v1"), history[0].Value)
		})
	}
}

func TestSQLiteKV_Timestamps(t *testing.T) {
	kv := NewSQLiteKV(setupTestDB(t))
	fixed := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return fixed }

	require.NoError(t, kv.Append("log", []byte("x")))
	entries, err := kv.List("log")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, fixed.Equal(entries[0].CreatedAt))
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	value := []byte("abc")
	require.NoError(t, kv.Put("k", value))
	value[0] = 'z'

	got, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestCodecs(t *testing.T) {
	trade := domain.Trade{
		ID:         "0190a8f2-7c1e-7b3a-9c4d-123456789abc",
		Date:       "2024-06-30",
		Asset:      "BTC",
		Direction:  domain.DirectionShort,
		EntryPrice: 100,
		ExitPrice:  90,
		Quantity:   2,
		PnL:        20,
	}

	for _, name := range []string{"json", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			codec, err := NewCodec(name)
			require.NoError(t, err)
			assert.Equal(t, name, codec.Name())

			raw, err := codec.Marshal(trade)
			require.NoError(t, err)

			var got domain.Trade
			require.NoError(t, codec.Unmarshal(raw, &got))
			assert.Equal(t, trade, got)
		})
	}

	t.Run("msgpack uses json field names", func(t *testing.T) {
		raw, err := MsgpackCodec{}.Marshal(trade)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, MsgpackCodec{}.Unmarshal(raw, &fields))
		assert.Contains(t, fields, "pnl")
		assert.Contains(t, fields, "entryPrice")
	})

	_, err := NewCodec("xml")
	assert.Error(t, err)
}
