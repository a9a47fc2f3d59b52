package goblins

// inboxSize bounds the events buffered between two ticks.
const inboxSize = 256

type fireMsg struct{ button int }

type keyMsg struct{ key string }

type spawnMsg struct{}

// Inbox serializes asynchronous events into the tick. Any goroutine may post;
// only Tick drains, so an event always lands between two ticks.
type Inbox struct {
	ch chan any
}

// NewInbox creates an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{ch: make(chan any, inboxSize)}
}

// Post enqueues an event. It never blocks; false means the inbox is full and
// the event was dropped.
func (in *Inbox) Post(msg any) bool {
	select {
	case in.ch <- msg:
		return true
	default:
		return false
	}
}

// Len returns the number of pending events.
func (in *Inbox) Len() int {
	return len(in.ch)
}

// drain delivers the events pending at call time, in arrival order. Events
// posted while draining wait for the next tick.
func (in *Inbox) drain(handle func(any)) {
	for n := len(in.ch); n > 0; n-- {
		select {
		case msg := <-in.ch:
			handle(msg)
		default:
			return
		}
	}
}
