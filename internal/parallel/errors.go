// Package parallel holds helpers shared by concurrent batch workers.
package parallel

import "sync"

// ErrorCollector keeps the first error reported by a set of workers and
// counts every failure. The zero value is ready to use and all methods are
// safe for concurrent use.
//
// Usage:
//
//	var ec parallel.ErrorCollector
//	for _, job := range jobs {
//	    g.Go(func() error {
//	        ec.SetError(solve(job))
//	        return nil
//	    })
//	}
//	_ = g.Wait()
//	if err := ec.Err(); err != nil {
//	    log.Printf("%d failures, first: %v", ec.Count(), err)
//	}
type ErrorCollector struct {
	mu    sync.Mutex
	first error
	count int
}

// SetError records err. Nil errors are ignored; only the first non-nil
// error is kept, but all of them are counted.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.first == nil {
		c.first = err
	}
	c.count++
}

// Err returns the first recorded error, or nil.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.first
}

// Count returns the number of non-nil errors recorded.
func (c *ErrorCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears the collector for reuse.
func (c *ErrorCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.first = nil
	c.count = 0
}
