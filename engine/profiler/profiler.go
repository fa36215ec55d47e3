// Package profiler keeps a short timing history per named scope so hosts
// can show frame costs on screen.
package profiler

import (
	"runtime"
	"sync"
	"time"
)

// DefaultHistory is the number of samples kept per span.
const DefaultHistory = 120

// Stat summarises the samples currently held for one span.
type Stat struct {
	Name    string
	Last    time.Duration
	Avg     time.Duration
	Max     time.Duration
	Samples int
}

type span struct {
	name  string
	ring  []time.Duration
	next  int
	count int
}

func (s *span) add(d time.Duration) {
	s.ring[s.next] = d
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
}

func (s *span) stat() Stat {
	st := Stat{Name: s.name, Samples: s.count}
	if s.count == 0 {
		return st
	}
	st.Last = s.ring[(s.next-1+len(s.ring))%len(s.ring)]
	var sum time.Duration
	for i := 0; i < s.count; i++ {
		d := s.ring[i]
		sum += d
		st.Max = max(st.Max, d)
	}
	st.Avg = sum / time.Duration(s.count)
	return st
}

// Profiler records span durations. The zero value is not usable; call New.
type Profiler struct {
	mu      sync.Mutex
	history int
	spans   []*span
	byName  map[string]*span
	now     func() time.Time
}

// New returns a profiler keeping history samples per span.
func New(history int) *Profiler {
	if history <= 0 {
		history = DefaultHistory
	}
	return &Profiler{history: history, byName: map[string]*span{}, now: time.Now}
}

func (p *Profiler) intern(name string) *span {
	if s, ok := p.byName[name]; ok {
		return s
	}
	s := &span{name: name, ring: make([]time.Duration, p.history)}
	p.byName[name] = s
	p.spans = append(p.spans, s)
	return s
}

// Start begins a scope and returns an end func to be deferred.
func (p *Profiler) Start(name string) func() {
	start := p.now()
	return func() { p.Record(name, p.now().Sub(start)) }
}

// Record adds one sample to the named span.
func (p *Profiler) Record(name string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.mu.Lock()
	p.intern(name).add(d)
	p.mu.Unlock()
}

// Stat returns the summary of one span.
func (p *Profiler) Stat(name string) (Stat, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.byName[name]
	if !ok {
		return Stat{}, false
	}
	return s.stat(), true
}

// Stats appends every span's summary to dst in first-seen order.
func (p *Profiler) Stats(dst []Stat) []Stat {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.spans {
		dst = append(dst, s.stat())
	}
	return dst
}

// Reset forgets every sample but keeps the span names.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.spans {
		s.next, s.count = 0, 0
	}
}

var global = New(DefaultHistory)

// Init replaces the package profiler with one keeping history samples per
// span.
func Init(history int) { global = New(history) }

// Default returns the package profiler.
func Default() *Profiler { return global }

// Start begins a scope on the package profiler.
func Start(name string) func() { return global.Start(name) }

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int { return runtime.NumGoroutine() }
