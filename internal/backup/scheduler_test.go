package backup

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", 0)
	scheduler := NewScheduler(manager, nil)
	if scheduler == nil {
		t.Fatal("NewScheduler returned nil")
	}
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
	if scheduler.BackupInterval != 24*time.Hour {
		t.Errorf("expected daily interval, got %s", scheduler.BackupInterval)
	}
}

func TestSchedulerRunsInitialBackup(t *testing.T) {
	database := setupDB(t)
	manager := NewBackupManager(t.TempDir(), 0)
	scheduler := NewScheduler(manager, database)
	scheduler.SetInterval(time.Hour)

	done := scheduler.Start()
	if done == nil {
		t.Fatal("Start returned nil done channel")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		backups, _ := manager.ListBackups()
		if len(backups) > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial backup was not created")
		}
		time.Sleep(20 * time.Millisecond)
	}

	scheduler.Stop()
	<-done
}

func TestSchedulerStop(t *testing.T) {
	database := setupDB(t)
	scheduler := NewScheduler(NewBackupManager(t.TempDir(), 0), database)

	done := scheduler.Start()
	time.Sleep(50 * time.Millisecond)
	scheduler.Stop()

	// Wait for done signal with timeout
	select {
	case <-done:
		// Successfully stopped
	case <-time.After(1 * time.Second):
		t.Fatal("scheduler did not stop within timeout")
	}
}

func TestSchedulerReportsErrors(t *testing.T) {
	scheduler := NewScheduler(NewBackupManager(t.TempDir(), 0), nil)

	errs := make(chan error, 1)
	scheduler.OnError = func(err error) {
		errs <- err
	}

	done := scheduler.Start()
	defer func() {
		scheduler.Stop()
		<-done
	}()

	select {
	case err := <-errs:
		if err == nil || !strings.Contains(err.Error(), "database is required") {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("OnError was not called")
	}
}

// blockingUploader holds every upload until its context ends
type blockingUploader struct {
	started chan struct{}
}

func (u *blockingUploader) Upload(ctx context.Context, path string) (string, error) {
	close(u.started)
	<-ctx.Done()
	return "", ctx.Err()
}

func TestSchedulerStopCancelsRunningBackup(t *testing.T) {
	database := setupDB(t)
	scheduler := NewScheduler(NewBackupManager(t.TempDir(), 0), database)

	uploader := &blockingUploader{started: make(chan struct{})}
	scheduler.Uploader = uploader

	reported := make(chan error, 1)
	scheduler.OnError = func(err error) {
		reported <- err
	}

	done := scheduler.Start()

	select {
	case <-uploader.started:
	case <-time.After(2 * time.Second):
		t.Fatal("upload did not start")
	}

	scheduler.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop while a backup was running")
	}

	select {
	case err := <-reported:
		t.Errorf("stopping should not report an error, got %v", err)
	default:
	}
}
