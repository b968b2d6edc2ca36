package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// View event names used as the "event" label.
const (
	EventCategory  = "category"
	EventAllergy   = "allergy"
	EventSort      = "sort"
	EventPage      = "page"
	EventModalOpen = "modal_open"
)

// Recorder groups the counters tidymenu updates.
type Recorder struct {
	Registry *prometheus.Registry
	events   *Counter
	fetches  *Counter
}

// NewRecorder creates a registry with the view event and fetch counters.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	return &Recorder{
		Registry: reg,
		events:   NewCounterWithRegistry(reg, "events_total", "Menu view events by kind.", "event"),
		fetches:  NewCounterWithRegistry(reg, "fetches_total", "Menu fetch attempts by outcome.", "outcome"),
	}
}

// Event counts one view event.
func (r *Recorder) Event(name string) {
	if r == nil {
		return
	}
	r.events.Increment(name)
}

// Fetch counts one fetch attempt.
func (r *Recorder) Fetch(ok bool) {
	if r == nil {
		return
	}

	outcome := "error"
	if ok {
		outcome = "ok"
	}
	r.fetches.Increment(outcome)
}
