package job

import (
	"time"
)

type Job interface {
	Execute()
}

// Dispatcher queues jobs for a pool of background workers, optionally
// after a delay. Delivery order across delayed jobs is not guaranteed.
type Dispatcher struct {
	queue chan Job
}

func NewDispatcher(buffer int) *Dispatcher {
	return &Dispatcher{
		queue: make(chan Job, buffer),
	}
}

func (d *Dispatcher) Dispatch(job Job, delay time.Duration) {
	if delay <= 0 {
		d.queue <- job

		return
	}

	go func() {
		<-time.After(delay)
		d.queue <- job
	}()
}

func (d *Dispatcher) StartWorkers(size int) {
	for i := 0; i < size; i++ {
		go func() {
			for job := range d.queue {
				job.Execute()
			}
		}()
	}
}
