package refresh

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports corpus-refresh progress to a writer as records
// are re-embedded. Safe for concurrent use by batch workers.
type ProgressTracker struct {
	mu       sync.Mutex
	out      io.Writer
	total    int
	interval int

	done     int
	reported int
	began    time.Time
	running  bool
}

// NewProgressTracker creates a tracker over total records that writes a
// progress line every interval records.
func NewProgressTracker(out io.Writer, total, interval int) *ProgressTracker {
	return &ProgressTracker{
		out:      out,
		total:    total,
		interval: interval,
	}
}

// Start resets the counters and begins timing. Until Start is called the
// tracker ignores updates.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.began = time.Now()
	p.running = true
	p.done = 0
	p.reported = 0
}

// Update sets the number of records processed so far.
func (p *ProgressTracker) Update(done int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance(done)
}

// Increment adds delta to the number of records processed.
func (p *ProgressTracker) Increment(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.advance(p.done + delta)
}

// Finish forces a final report and a trailing newline.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.done = p.total
	p.report()
	fmt.Fprintln(p.out)
}

// Elapsed returns how long the refresh has been running.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return 0
	}
	return time.Since(p.began)
}

// advance moves the counter and reports once a full interval has passed.
// Callers hold the lock.
func (p *ProgressTracker) advance(done int) {
	if !p.running {
		return
	}

	if done > p.total {
		done = p.total
	}
	p.done = done

	if p.done-p.reported >= p.interval {
		p.report()
		p.reported = p.done
	}
}

// report prints one progress line. Callers hold the lock.
func (p *ProgressTracker) report() {
	elapsed := time.Since(p.began).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(p.done) / elapsed
	}

	pct := 0.0
	if p.total > 0 {
		pct = float64(p.done) / float64(p.total) * 100
	}

	fmt.Fprintf(p.out, "\rRe-embedded %d/%d names (%.1f%%, %.1f/s)",
		p.done, p.total, pct, rate)
}
