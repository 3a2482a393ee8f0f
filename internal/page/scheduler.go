package page

import (
	"sync"
	"time"
)

type timeScheduler struct{}

// NewTimeScheduler returns a Scheduler backed by the time package.
func NewTimeScheduler() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) After(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

func (timeScheduler) Every(d time.Duration, f func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				f()
			case <-done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
