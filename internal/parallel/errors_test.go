package parallel

import (
	"errors"
	"sync"
	"testing"
)

func TestErrorCollector_KeepsFirstError(t *testing.T) {
	t.Parallel()
	var ec ErrorCollector
	first := errors.New("first error")
	second := errors.New("second error")

	ec.SetError(first)
	ec.SetError(second)
	ec.SetError(nil)

	if ec.Err() != first {
		t.Errorf("Err() = %v; want %v", ec.Err(), first)
	}
	if ec.Count() != 2 {
		t.Errorf("Count() = %d; want 2", ec.Count())
	}
}

func TestErrorCollector_ZeroValue(t *testing.T) {
	t.Parallel()
	var ec ErrorCollector
	if ec.Err() != nil || ec.Count() != 0 {
		t.Errorf("zero value: Err() = %v, Count() = %d", ec.Err(), ec.Count())
	}
}

func TestErrorCollector_Concurrency(t *testing.T) {
	t.Parallel()
	var ec ErrorCollector
	var wg sync.WaitGroup
	const workers = 100
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			if i%2 == 0 {
				ec.SetError(errors.New("solve failed"))
			} else {
				ec.SetError(nil)
			}
		}(i)
	}

	close(start)
	wg.Wait()

	if ec.Err() == nil || ec.Err().Error() != "solve failed" {
		t.Errorf("Err() = %v; want 'solve failed'", ec.Err())
	}
	if ec.Count() != workers/2 {
		t.Errorf("Count() = %d; want %d", ec.Count(), workers/2)
	}
}

func TestErrorCollector_Reset(t *testing.T) {
	t.Parallel()
	var ec ErrorCollector
	ec.SetError(errors.New("test error"))
	ec.Reset()
	if ec.Err() != nil || ec.Count() != 0 {
		t.Errorf("after Reset: Err() = %v, Count() = %d", ec.Err(), ec.Count())
	}

	next := errors.New("new error")
	ec.SetError(next)
	if ec.Err() != next {
		t.Errorf("Err() = %v; want %v", ec.Err(), next)
	}
}
