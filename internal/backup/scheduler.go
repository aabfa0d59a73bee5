// SPDX-License-Identifier: MIT
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/harishsolar/solarsite/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	DB             *gorm.DB
	BackupInterval time.Duration
	// Uploader, if set, receives a copy of every backup
	Uploader Uploader
	// OnError is called when a scheduled backup or its upload fails
	OnError func(error)

	done     chan bool
	stopChan chan bool

	// ctx is cancelled by Stop so an in-flight backup ends with it
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *BackupManager, db *gorm.DB) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		Manager:        manager,
		DB:             db,
		BackupInterval: 24 * time.Hour, // Default: daily
		done:           make(chan bool, 1),
		stopChan:       make(chan bool, 1),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start begins the backup scheduler in a goroutine.
// Returns a done channel that receives once the scheduler stops.
func (s *Scheduler) Start() chan bool {
	go func() {
		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		// Run initial backup immediately
		s.runBackup()

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-ticker.C:
				s.runBackup()
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler, abandoning a backup that is still running
func (s *Scheduler) Stop() {
	s.cancel()
	select {
	case s.stopChan <- true:
	default:
	}
}

// runBackup performs a single backup operation
func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	path, err := s.Manager.CreateBackup(ctx, s.DB)
	if err != nil {
		err = fmt.Errorf("backup creation failed: %w", err)
		logging.L().Error("scheduled backup failed", zap.Error(err))
		s.fail(err)
		return
	}

	logging.L().Info("backup created", zap.String("path", path))

	if s.Uploader == nil {
		return
	}

	location, err := s.Uploader.Upload(ctx, path)
	if err != nil {
		err = fmt.Errorf("backup upload failed: %w", err)
		logging.L().Error("off-site backup failed", zap.Error(err))
		s.fail(err)
		return
	}

	logging.L().Info("backup uploaded", zap.String("location", location))
}

func (s *Scheduler) fail(err error) {
	if s.ctx.Err() != nil {
		// Stopped mid-backup; nothing to report
		return
	}
	if s.OnError != nil {
		s.OnError(err)
	}
}

// SetInterval sets the backup interval
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.BackupInterval = interval
}
