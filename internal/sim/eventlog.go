package sim

import (
	"fmt"
	"strings"
)

// Event is one structured record emitted while the World runs.
type Event struct {
	Tick     int
	Entity   string  // label e.g. "P3", "Farm#7", or "--" for world events
	Team     string  // "player", "enemy", or "--"
	Category string  // combat, move, death, production, command, outcome, guard
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[T=042] P3       combat     engage           hp=87.5
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-10s %-16s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// EventLog collects structured events. A positive limit bounds memory for
// long interactive sessions by dropping the oldest entries; headless runs
// use limit 0 and keep everything.
type EventLog struct {
	entries []Event
	verbose bool
	limit   int
	dropped int
}

// NewEventLog creates an EventLog. If verbose is true, per-step movement
// entries are recorded as well.
func NewEventLog(verbose bool, limit int) *EventLog {
	return &EventLog{verbose: verbose, limit: limit}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, entity, team, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Event{
		Tick:     tick,
		Entity:   entity,
		Team:     team,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	if l.limit > 0 && len(l.entries) >= 2*l.limit {
		n := len(l.entries) - l.limit
		l.dropped += n
		l.entries = append([]Event(nil), l.entries[n:]...)
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, entity, team, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, entity, team, category, key, value, numVal)
}

// Entries returns all retained entries.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Dropped returns how many entries were discarded by the limit.
func (l *EventLog) Dropped() int {
	return l.dropped
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for a specific entity label.
func (l *EventLog) FilterEntity(label string) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return Event{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Tail returns the last n entries.
func (l *EventLog) Tail(n int) []Event {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// Format returns the full log as a single string for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
