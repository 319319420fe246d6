// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/mock"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that records start and stop calls.
type mockWorker struct {
	id         int
	startCount int
	stopCount  int
	log        *[]string
}

func (m *mockWorker) Start(context.Context) {
	m.startCount++
	if m.log != nil {
		*m.log = append(*m.log, "start", string(rune('0'+m.id)))
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.log != nil {
		*m.log = append(*m.log, "stop", string(rune('0'+m.id)))
	}
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	var log []string

	ws := &Workers{workers: []Worker{
		&mockWorker{id: 1, log: &log},
		&mockWorker{id: 2, log: &log},
	}}
	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}
	if len(log) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%s, got %s", i, v, log[i])
		}
	}
}

func TestNewClientWorkers_DrivesTokenRefreshJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientTokenRefreshJob(ctrl)

	cfg := config.ClientWorkers{TokenCheckInterval: 15 * time.Second, TokenRefreshLeeway: 2 * time.Minute}
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 15*time.Second, 2*time.Minute),
		job.EXPECT().Stop(),
	)

	ws := NewClientWorkers(cfg, &service.ClientServices{TokenRefreshJob: job})
	ws.Start(ctx)
	ws.Stop()
}
