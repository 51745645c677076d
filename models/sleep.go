// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"time"
)

// SleepEntry is one finished sleep session.
type SleepEntry struct {
	Start time.Time
	End   time.Time

	// Duration is the human-readable elapsed time between Start and End.
	Duration string
}

// SleepLog holds the finished sessions and the currently open one, if any.
// ActiveStart is non-nil exactly while a session is open.
type SleepLog struct {
	ActiveStart *time.Time
	History     []SleepEntry
}

// NewSleepLog returns the zero-value sleep log.
func NewSleepLog() SleepLog {
	return SleepLog{History: []SleepEntry{}}
}

// IsActive reports whether a sleep session is currently open.
func (s SleepLog) IsActive() bool {
	return s.ActiveStart != nil
}

// Clone returns a deep copy of s.
func (s SleepLog) Clone() SleepLog {
	if s.ActiveStart != nil {
		start := *s.ActiveStart
		s.ActiveStart = &start
	}
	s.History = slices.Clone(s.History)
	if s.History == nil {
		s.History = []SleepEntry{}
	}
	return s
}

// NewSleepEntry builds a finished entry with its duration derived from the
// two timestamps.
func NewSleepEntry(start, end time.Time) SleepEntry {
	return SleepEntry{Start: start, End: end, Duration: FormatSleepDuration(end.Sub(start))}
}

// FormatSleepDuration renders d as "<h> сағ <m> мин <s> сек".
// Negative durations render as zero.
func FormatSleepDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	return fmt.Sprintf("%d сағ %d мин %d сек", hours, minutes, seconds)
}

// SleepHistoryItem is one history row of the remote sleep resource.
type SleepHistoryItem struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
}

// SleepResponse is the body of GET /sleep.
type SleepResponse struct {
	History      []SleepHistoryItem `json:"history"`
	CurrentSleep *time.Time         `json:"current_sleep,omitempty"`
}

// StartSleepResponse is the body returned by POST /sleep/start.
type StartSleepResponse struct {
	StartTime time.Time `json:"start_time"`
}

// SleepLogFromAPI maps the remote representation onto the domain type.
// Durations are recomputed from the timestamps; the server's string is
// ignored.
func SleepLogFromAPI(r SleepResponse) SleepLog {
	log := SleepLog{History: make([]SleepEntry, 0, len(r.History))}
	if r.CurrentSleep != nil {
		start := *r.CurrentSleep
		log.ActiveStart = &start
	}
	for _, h := range r.History {
		log.History = append(log.History, NewSleepEntry(h.Start, h.End))
	}
	return log
}

// LocalSleepEntry is the device-local representation of a finished session.
type LocalSleepEntry struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
}

// LocalSleepLog is the device-local blob stored under the sleep key.
type LocalSleepLog struct {
	SleepStart *time.Time        `json:"sleepStart,omitempty"`
	History    []LocalSleepEntry `json:"sleepHistory"`
}

// ToLocal maps the domain type onto its device-local blob.
func (s SleepLog) ToLocal() LocalSleepLog {
	local := LocalSleepLog{History: make([]LocalSleepEntry, 0, len(s.History))}
	if s.ActiveStart != nil {
		start := *s.ActiveStart
		local.SleepStart = &start
	}
	for _, e := range s.History {
		local.History = append(local.History, LocalSleepEntry{Start: e.Start, End: e.End, Duration: e.Duration})
	}
	return local
}

// SleepLogFromLocal maps a device-local blob onto the domain type.
func SleepLogFromLocal(l LocalSleepLog) SleepLog {
	log := SleepLog{History: make([]SleepEntry, 0, len(l.History))}
	if l.SleepStart != nil {
		start := *l.SleepStart
		log.ActiveStart = &start
	}
	for _, e := range l.History {
		log.History = append(log.History, NewSleepEntry(e.Start, e.End))
	}
	return log
}
