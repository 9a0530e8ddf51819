// Package events fans monitor events out to status API subscribers.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Hub is an in-process publish/subscribe fan-out. A nil *Hub is valid
// and drops everything, so the monitor can run without a status API.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish marshals the payload and delivers it to every subscriber.
// Sends are non-blocking; slow subscribers miss events.
func (h *Hub) Publish(name string, payload any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := Event{Name: name, Data: b}
	h.mu.RLock()
	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
	h.mu.RUnlock()
}

// PublishAlertFired publishes a timestamped alert.fired event.
func (h *Hub) PublishAlertFired(decision string, percent int, charging bool, title string) {
	h.Publish(AlertFired, AlertFiredEvent{
		Decision: decision,
		Percent:  percent,
		Charging: charging,
		Title:    title,
		Ts:       time.Now().Unix(),
	})
}

// PublishCycleCompleted publishes a timestamped cycle.completed event.
func (h *Hub) PublishCycleCompleted(percent int, charging, armed bool, nextDelaySec int, cycleErr error) {
	ev := CycleCompletedEvent{
		Percent:      percent,
		Charging:     charging,
		Armed:        armed,
		NextDelaySec: nextDelaySec,
		Ts:           time.Now().Unix(),
	}
	if cycleErr != nil {
		ev.Error = cycleErr.Error()
	}
	h.Publish(CycleCompleted, ev)
}
