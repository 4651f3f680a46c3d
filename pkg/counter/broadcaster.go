package counter

import (
	"sync"
)

// Broadcaster fans counter value changes out to subscribers. Sends never
// block: once a subscriber's buffer is full, newer values are dropped until
// the subscriber drains the oldest ones.
type Broadcaster struct {
	mutex       sync.Mutex
	nextID      int
	subscribers map[int]chan int64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: map[int]chan int64{},
	}
}

// Publish sends a value to every subscriber.
func (b *Broadcaster) Publish(value int64) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, subscriber := range b.subscribers {
		select {
		case subscriber <- value:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel along with a
// function that removes the subscription.
func (b *Broadcaster) Subscribe() (<-chan int64, func()) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	id := b.nextID
	b.nextID++

	channel := make(chan int64, 8)
	b.subscribers[id] = channel

	return channel, func() {
		b.mutex.Lock()
		defer b.mutex.Unlock()

		if _, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(channel)
		}
	}
}
