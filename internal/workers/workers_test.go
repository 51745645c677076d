// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(nil, w, nil)

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
	ws.Run(context.Background())
	if w.runCount != 1 {
		t.Errorf("expected runCount=1, got %d", w.runCount)
	}
}

func TestWorkers_RunStop_Order(t *testing.T) {
	order := []string{}

	ws := NewWorkers(
		&orderWorker{id: "a", order: &order},
		&orderWorker{id: "b", order: &order},
		&orderWorker{id: "c", order: &order},
	)
	ws.Run(context.Background())
	ws.Stop()

	expected := []string{"run a", "run b", "run c", "stop c", "stop b", "stop a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d events, got %v", len(expected), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%q, got %q", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Stop()

	if w.stopCount != 1 {
		t.Errorf("expected Stop to be called exactly once, got %d", w.stopCount)
	}
}

// orderWorker is a helper that records its lifecycle events in a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, "run "+o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop "+o.id)
}
