package job

import "github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/handlers/event"

// SendEventJob fans a draw event out to subscribed displays off the
// request path.
type SendEventJob struct {
	EventMessage event.Message
	Hub          *event.Hub
}

func (job *SendEventJob) Execute() {
	if err := job.Hub.TriggerEvent(job.EventMessage); err != nil {
		return
	}
}
