package channel

import (
	"sync"
	"sync/atomic"

	"github.com/kode4food/replay/internal/sync/mutex"
)

type (
	// Log is an append-only sequence of messages stored as a linked chain
	// of fixed-capacity segments. A written slot is never moved, reused, or
	// discarded, so any index less than the current length remains readable
	// for the life of the Log. This is what allows a Receiver to replay the
	// Channel from the very beginning
	Log[Msg any] struct {
		tail         tailSegment[Msg]
		head         atomic.Pointer[segment[Msg]]
		length       atomic.Uint64
		capIncrement uint32
	}

	tailSegment[Msg any] struct {
		segment *segment[Msg]
		mu      sync.Mutex
	}

	// segment manages a fixed-capacity run of Log entries. Its mutex is
	// disabled once the segment fills, at which point it is immutable
	segment[Msg any] struct {
		log     *Log[Msg]
		next    *segment[Msg]
		entries []Msg
		mu      mutex.InitialMutex
		len     atomic.Uint32
		cap     uint32
	}
)

func makeLog[Msg any](segmentSize uint32) *Log[Msg] {
	return &Log[Msg]{
		capIncrement: segmentSize,
	}
}

// Length returns the number of messages appended to the Log. The count is
// only bumped after its message is in place, so any index below the
// returned value is safe to read
func (l *Log[_]) Length() uint64 {
	return l.length.Load()
}

// put appends a message at the next index of the Log. Appends from any
// number of callers are serialized by the tail mutex, each occupying a
// unique, strictly increasing index. Readers are never blocked
func (l *Log[Msg]) put(msg Msg) {
	l.tail.mu.Lock()
	defer l.tail.mu.Unlock()
	tail := l.tail.segment
	if tail == nil {
		tail = l.makeSegment()
		l.tail.segment = tail
		l.head.Store(tail)
	}
	if s := tail.append(msg); s != tail {
		l.tail.segment = s
	}
	l.length.Add(1)
}

// get returns the message at the specified offset. The second result is
// false if the offset has not been written yet
func (l *Log[Msg]) get(o uint64) (Msg, bool) {
	curr := l.head.Load()
	for ; curr != nil && o >= uint64(curr.cap); curr = curr.getNext() {
		o -= uint64(curr.cap)
	}
	if curr != nil && o < uint64(curr.length()) {
		return curr.entries[o], true
	}
	var zero Msg
	return zero, false
}

func (l *Log[Msg]) makeSegment() *segment[Msg] {
	c := l.capIncrement
	return &segment[Msg]{
		log:     l,
		cap:     c,
		entries: make([]Msg, c),
	}
}

func (s *segment[Msg]) getNext() *segment[Msg] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func (s *segment[Msg]) append(msg Msg) *segment[Msg] {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.len.Load()
	if n == s.cap {
		s.next = s.log.makeSegment()
		s.mu.DisableLock()
		return s.next.append(msg)
	}
	s.entries[n] = msg
	s.len.Add(1)
	return s
}

func (s *segment[_]) length() uint32 {
	return s.len.Load()
}
