package distmat

import "sync"

// progress serializes callback invocations and keeps them at a bounded
// cadence: a call is made whenever at least step new units finished since
// the previous call, and always when done reaches total.
type progress struct {
	mu       sync.Mutex
	fn       ProgressFunc
	total    int
	step     int
	done     int
	reported int
}

func newProgress(fn ProgressFunc, total int) *progress {
	return &progress{fn: fn, total: total, step: max(1, (total+progressSteps-1)/progressSteps)}
}

// add records n finished units.
func (p *progress) add(n int) {
	if p.fn == nil || n == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	if p.done == p.total || p.done-p.reported >= p.step {
		p.reported = p.done
		p.fn(p.done, p.total)
	}
}
