// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"sync"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type CleanupService interface {
	CreateCleanupJob(schedule string) error
	GetLastCleanupResult() *view.CleanupResult
}

func NewCleanupService(cleanupRepository repository.CleanupRepository, minioStorageService MinioStorageService, minioStorageCreds *view.MinioStorageCreds, retention time.Duration) CleanupService {
	return &cleanupServiceImpl{
		cleanupRepository:   cleanupRepository,
		minioStorageService: minioStorageService,
		minioStorageCreds:   minioStorageCreds,
		retention:           retention,
		cron:                cron.New(),
		lastResultMutex:     sync.RWMutex{},
	}
}

type cleanupServiceImpl struct {
	cleanupRepository   repository.CleanupRepository
	minioStorageService MinioStorageService
	minioStorageCreds   *view.MinioStorageCreds
	retention           time.Duration
	cron                *cron.Cron
	lastResult          *view.CleanupResult
	lastResultMutex     sync.RWMutex
}

func (c *cleanupServiceImpl) CreateCleanupJob(schedule string) error {
	job := cleanupJob{
		schedule:            schedule,
		cleanupRepository:   c.cleanupRepository,
		minioStorageService: c.minioStorageService,
		minioStorageCreds:   c.minioStorageCreds,
		retention:           c.retention,
		saveResult:          c.saveResult,
	}

	if len(c.cron.Entries()) == 0 {
		location, err := time.LoadLocation("")
		if err != nil {
			return err
		}
		c.cron = cron.New(cron.WithLocation(location))
		c.cron.Start()
	}

	_, err := c.cron.AddJob(schedule, &job)
	if err != nil {
		log.Warnf("[Cleanup service] Job wasn't added for schedule - %s. With error - %s", schedule, err)
		return err
	}
	log.Infof("[Cleanup service] Job was created with schedule - %s", schedule)

	return nil
}

func (c *cleanupServiceImpl) GetLastCleanupResult() *view.CleanupResult {
	c.lastResultMutex.RLock()
	defer c.lastResultMutex.RUnlock()
	return c.lastResult
}

func (c *cleanupServiceImpl) saveResult(result view.CleanupResult) {
	c.lastResultMutex.Lock()
	defer c.lastResultMutex.Unlock()
	c.lastResult = &result
}

type cleanupJob struct {
	schedule            string
	cleanupRepository   repository.CleanupRepository
	minioStorageService MinioStorageService
	minioStorageCreds   *view.MinioStorageCreds
	retention           time.Duration
	saveResult          func(result view.CleanupResult)
}

func (j cleanupJob) Run() {
	scheduledAt := time.Now().Round(time.Second)
	deleteBefore := scheduledAt.Add(-j.retention)

	log.Info("Cleanup job has started")
	purgedRuns, deletedProjects, err := j.cleanupRepository.RemoveDeletedProjects(deleteBefore)
	if err != nil {
		log.Errorf("Failed to clean up soft deleted projects: %v", err)
		return
	}
	deletedConnections, err := j.cleanupRepository.RemoveDeletedConnections(deleteBefore)
	if err != nil {
		log.Errorf("Failed to clean up soft deleted connections: %v", err)
		return
	}
	deletedRunExports := 0
	if j.minioStorageCreds.IsActive && len(purgedRuns) > 0 {
		// exported archives of purged runs are orphans now
		err = j.minioStorageService.RemoveFiles(context.Background(), view.RUN_EXPORTS_TABLE, purgedRuns)
		if err != nil {
			log.Errorf("Failed to remove exported archives of purged runs: %v", err)
		} else {
			deletedRunExports = len(purgedRuns)
		}
	}
	j.saveResult(view.CleanupResult{
		ScheduledAt:        scheduledAt,
		DeletedProjects:    deletedProjects,
		DeletedConnections: deletedConnections,
		DeletedRunExports:  deletedRunExports,
	})
	log.Infof("Cleanup was performed at %s with results: %d projects, %d connections removed", scheduledAt, deletedProjects, deletedConnections)
}
