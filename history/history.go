// Package history keeps an in-memory log of recent conversions for a session.
//
// The log is a bounded ring: once Cap entries are held, each Append evicts the
// oldest one. Entries carry a monotonically increasing sequence number that
// survives eviction, so a UI can tell how many conversions scrolled away.
//
// A Log can be exported to and imported from any io.Writer/io.Reader; see
// Export and Import. Where the bytes end up is the caller's business.
package history

import (
	"sync"
	"time"
)

// DefaultCapacity is used when New is called with capacity <= 0.
const DefaultCapacity = 100

// Entry is one recorded conversion. Exactly one of the projection group
// (Binary, Hex, Signed, Unsigned) or the failure group (ErrorKind, Message) is set.
type Entry struct {
	Seq       uint64    `json:"seq"`
	At        time.Time `json:"at"`
	Value     string    `json:"value"`
	Bits      uint32    `json:"bits"`
	InputType string    `json:"inputType"`

	Binary   string `json:"binaryText,omitempty"`
	Hex      string `json:"hexText,omitempty"`
	Signed   string `json:"signedText,omitempty"`
	Unsigned string `json:"unsignedText,omitempty"`

	ErrorKind string `json:"errorKind,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Failed reports whether the entry records a failed conversion.
func (e Entry) Failed() bool { return e.ErrorKind != "" }

// Options configures a Log.
type Options struct {
	// Now returns the timestamp stamped on appended entries.
	Now func() time.Time
}

// DefaultOptions are applied before option functions passed to New.
var DefaultOptions = Options{
	Now: time.Now,
}

// Log is a bounded, concurrency-safe ring of entries.
type Log struct {
	mu      sync.Mutex
	buf     []Entry
	start   int // index of the oldest entry
	n       int
	nextSeq uint64
	now     func() time.Time
}

// New creates an empty log holding at most capacity entries.
func New(capacity int, optFns ...func(o *Options)) *Log {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		buf:     make([]Entry, capacity),
		nextSeq: 1,
		now:     opts.Now,
	}
}

// Append records e, assigning Seq and, if unset, At. It returns the stored entry.
func (l *Log) Append(e Entry) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.Seq = l.nextSeq
	l.nextSeq++
	if e.At.IsZero() {
		e.At = l.now()
	}

	l.pushLocked(e)
	return e
}

func (l *Log) pushLocked(e Entry) {
	capacity := len(l.buf)
	if l.n < capacity {
		l.buf[(l.start+l.n)%capacity] = e
		l.n++
		return
	}
	l.buf[l.start] = e
	l.start = (l.start + 1) % capacity
}

// Entries returns all held entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastLocked(l.n)
}

// Last returns up to n most recent entries, oldest first.
func (l *Log) Last(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > l.n {
		n = l.n
	}
	if n < 0 {
		n = 0
	}
	return l.lastLocked(n)
}

func (l *Log) lastLocked(n int) []Entry {
	out := make([]Entry, n)
	capacity := len(l.buf)
	first := l.start + l.n - n
	for i := 0; i < n; i++ {
		out[i] = l.buf[(first+i)%capacity]
	}
	return out
}

// Len returns the number of held entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

// Cap returns the maximum number of held entries.
func (l *Log) Cap() int {
	return len(l.buf)
}

// Clear drops all entries. Sequence numbers keep counting.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.buf)
	l.start, l.n = 0, 0
}

// Restore replaces the log contents with entries (oldest first), keeping their
// sequence numbers. If there are more entries than Cap, the oldest are dropped.
func (l *Log) Restore(entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.buf)
	l.start, l.n = 0, 0
	for _, e := range entries {
		l.pushLocked(e)
		if e.Seq >= l.nextSeq {
			l.nextSeq = e.Seq + 1
		}
	}
}
