package monitor

import "time"

// Status is the last observed health of the snapshot store.
type Status struct {
	Store     bool      `json:"store"`
	Driver    string    `json:"driver"`
	Error     string    `json:"error,omitempty"`
	LastCheck time.Time `json:"last_check"`
}
