package history

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func(o *Options) {
	return func(o *Options) {
		o.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	}
}

func entry(value string) Entry {
	return Entry{Value: value, Bits: 8, InputType: "signed", Signed: value}
}

func TestLog_AppendAssignsSeqAndTime(t *testing.T) {
	l := New(4, fixedClock())

	e := l.Append(entry("1"))
	assert.Equal(t, uint64(1), e.Seq)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), e.At)

	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	e2 := l.Append(Entry{Value: "2", At: at})
	assert.Equal(t, uint64(2), e2.Seq)
	assert.Equal(t, at, e2.At)
}

func TestLog_Eviction(t *testing.T) {
	l := New(3, fixedClock())
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		l.Append(entry(v))
	}

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Cap())

	got := l.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].Value)
	assert.Equal(t, "5", got[2].Value)
	assert.Equal(t, uint64(5), got[2].Seq)

	last := l.Last(2)
	require.Len(t, last, 2)
	assert.Equal(t, "4", last[0].Value)
	assert.Equal(t, "5", last[1].Value)

	assert.Len(t, l.Last(10), 3)
	assert.Empty(t, l.Last(-1))
}

func TestLog_Clear(t *testing.T) {
	l := New(2, fixedClock())
	l.Append(entry("1"))
	l.Append(entry("2"))
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Entries())

	// Sequence numbers keep counting after Clear.
	e := l.Append(entry("3"))
	assert.Equal(t, uint64(3), e.Seq)
}

func TestLog_DefaultCapacity(t *testing.T) {
	l := New(0)
	assert.Equal(t, DefaultCapacity, l.Cap())
}

func TestLog_Restore(t *testing.T) {
	l := New(2, fixedClock())
	l.Restore([]Entry{
		{Seq: 7, Value: "a"},
		{Seq: 8, Value: "b"},
		{Seq: 9, Value: "c"},
	})

	got := l.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Value)
	assert.Equal(t, "c", got[1].Value)

	e := l.Append(entry("d"))
	assert.Equal(t, uint64(10), e.Seq)
}

func TestLog_ConcurrentAppend(t *testing.T) {
	l := New(1000, fixedClock())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Append(entry("x"))
			}
		}()
	}
	wg.Wait()

	got := l.Entries()
	require.Len(t, got, 500)
	seen := make(map[uint64]bool, len(got))
	for _, e := range got {
		assert.False(t, seen[e.Seq], "duplicate seq %d", e.Seq)
		seen[e.Seq] = true
	}
}

func TestEntry_Failed(t *testing.T) {
	assert.False(t, entry("1").Failed())
	assert.True(t, Entry{ErrorKind: "OutOfRange", Message: "too big"}.Failed())
}
