package events

import "encoding/json"

// Event name constants
const (
	AlertFired     = "alert.fired"
	CycleCompleted = "cycle.completed"
)

// Event is a generic SSE event from the monitor.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// AlertFiredEvent is the typed payload for alert.fired.
type AlertFiredEvent struct {
	Decision string `json:"decision"`
	Percent  int    `json:"percent"`
	Charging bool   `json:"charging"`
	Title    string `json:"title"`
	Ts       int64  `json:"ts"`
}

// CycleCompletedEvent is the typed payload for cycle.completed.
type CycleCompletedEvent struct {
	Percent      int    `json:"percent"`
	Charging     bool   `json:"charging"`
	Armed        bool   `json:"armed"`
	NextDelaySec int    `json:"nextDelaySec"`
	Error        string `json:"error,omitempty"`
	Ts           int64  `json:"ts"`
}

// DecodeAs decodes the event payload into the caller-specified generic
// type T. It ignores the event name and simply unmarshals Data into T.
// If Data is empty, it returns the zero value of T with a nil error.
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
