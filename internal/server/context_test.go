package server

import (
	"context"
	"strings"
	"sync"
	"testing"
)

func TestValidateServices(t *testing.T) {
	tests := []struct {
		name     string
		services []string
		wantErr  string
	}{
		{
			name:     "all valid",
			services: AllServices,
		},
		{
			name:     "single family",
			services: []string{ServiceGmail},
		},
		{
			name:     "empty list",
			services: nil,
		},
		{
			name:     "unknown family",
			services: []string{"calendar", "tasks"},
			wantErr:  "unknown services: tasks",
		},
		{
			name:     "multiple unknown",
			services: []string{"zz", "aa"},
			wantErr:  "unknown services: aa, zz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateServices(tt.services)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewServerContextRejectsUnknownService(t *testing.T) {
	_, err := NewServerContext(context.Background(), nil, Config{
		Services: []string{"nonsense"},
	})
	if err == nil {
		t.Fatal("expected error for unknown service")
	}
}

func TestServerContextAccessors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := &ServerContext{
		ctx:           ctx,
		cancel:        cancel,
		services:      []string{ServiceCalendar, ServiceDrive},
		readOnly:      true,
		driveFolderID: "folder-1",
	}

	if !sc.HasService(ServiceCalendar) || !sc.HasService(ServiceDrive) {
		t.Error("expected enabled services reported")
	}
	if sc.HasService(ServiceGmail) {
		t.Error("expected disabled service not reported")
	}
	if !sc.ReadOnly() {
		t.Error("expected read-only flag")
	}
	if sc.DriveFolderID() != "folder-1" {
		t.Errorf("unexpected folder ID: %s", sc.DriveFolderID())
	}
	if sc.GmailClient() != nil {
		t.Error("expected nil client for disabled family")
	}
	if sc.Metrics() != nil || sc.AuditLogger() != nil {
		t.Error("expected nil instrumentation when not configured")
	}
}

func TestServerContextConcurrentReaders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := &ServerContext{
		ctx:           ctx,
		cancel:        cancel,
		services:      AllServices,
		driveFolderID: "folder-1",
	}

	// Tool handlers read the context concurrently; every reader must see
	// the same values without coordination.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !sc.HasService(ServiceDrive) {
					t.Error("expected drive enabled")
					return
				}
				if sc.DriveFolderID() != "folder-1" {
					t.Error("unexpected folder ID")
					return
				}
				if sc.IsShutdown() {
					t.Error("unexpected shutdown")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestServerContextShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sc := &ServerContext{ctx: ctx, cancel: cancel}

	if sc.IsShutdown() {
		t.Error("expected not shut down initially")
	}

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("expected shut down after Shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected context cancelled after Shutdown")
	}

	// Second call is a no-op.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("unexpected error on repeat shutdown: %v", err)
	}
}
