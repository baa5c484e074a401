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
	"errors"
	"testing"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/stretchr/testify/assert"
)

type cleanupRepositoryMock struct {
	RemoveDeletedProjectsFunc    func(deleteBefore time.Time) ([]string, int, error)
	RemoveDeletedConnectionsFunc func(deleteBefore time.Time) (int, error)
}

func (m *cleanupRepositoryMock) RemoveDeletedProjects(deleteBefore time.Time) ([]string, int, error) {
	if m.RemoveDeletedProjectsFunc != nil {
		return m.RemoveDeletedProjectsFunc(deleteBefore)
	}
	return nil, 0, nil
}

func (m *cleanupRepositoryMock) RemoveDeletedConnections(deleteBefore time.Time) (int, error) {
	if m.RemoveDeletedConnectionsFunc != nil {
		return m.RemoveDeletedConnectionsFunc(deleteBefore)
	}
	return 0, nil
}

type minioStorageServiceMock struct {
	RemoveFilesFunc func(ctx context.Context, tableName string, entityIds []string) error
}

func (m *minioStorageServiceMock) CreateBucketIfNotExists(ctx context.Context) error { return nil }

func (m *minioStorageServiceMock) GetFile(ctx context.Context, tableName, entityId string) ([]byte, error) {
	return nil, nil
}

func (m *minioStorageServiceMock) UploadFile(ctx context.Context, tableName, entityId string, content []byte) error {
	return nil
}

func (m *minioStorageServiceMock) RemoveFile(ctx context.Context, tableName, entityId string) error {
	return nil
}

func (m *minioStorageServiceMock) RemoveFiles(ctx context.Context, tableName string, entityIds []string) error {
	if m.RemoveFilesFunc != nil {
		return m.RemoveFilesFunc(ctx, tableName, entityIds)
	}
	return nil
}

func newCleanupJobForTest(repo *cleanupRepositoryMock, storage *minioStorageServiceMock, storageActive bool) (*cleanupServiceImpl, cleanupJob) {
	c := &cleanupServiceImpl{
		cleanupRepository:   repo,
		minioStorageService: storage,
		minioStorageCreds:   &view.MinioStorageCreds{IsActive: storageActive, BucketName: "migrationhub"},
		retention:           30 * 24 * time.Hour,
	}
	job := cleanupJob{
		cleanupRepository:   repo,
		minioStorageService: storage,
		minioStorageCreds:   c.minioStorageCreds,
		retention:           c.retention,
		saveResult:          c.saveResult,
	}
	return c, job
}

func TestCleanupJob_RemovesPurgedRunExports(t *testing.T) {
	var gotDeleteBefore time.Time
	repo := &cleanupRepositoryMock{
		RemoveDeletedProjectsFunc: func(deleteBefore time.Time) ([]string, int, error) {
			gotDeleteBefore = deleteBefore
			return []string{"run-1", "run-2"}, 2, nil
		},
		RemoveDeletedConnectionsFunc: func(deleteBefore time.Time) (int, error) {
			return 1, nil
		},
	}
	var removedTable string
	var removedIds []string
	storage := &minioStorageServiceMock{
		RemoveFilesFunc: func(ctx context.Context, tableName string, entityIds []string) error {
			removedTable = tableName
			removedIds = entityIds
			return nil
		},
	}
	c, job := newCleanupJobForTest(repo, storage, true)

	job.Run()

	result := c.GetLastCleanupResult()
	if assert.NotNil(t, result) {
		assert.Equal(t, 2, result.DeletedProjects)
		assert.Equal(t, 1, result.DeletedConnections)
		assert.Equal(t, 2, result.DeletedRunExports)
	}
	assert.Equal(t, view.RUN_EXPORTS_TABLE, removedTable)
	assert.Equal(t, []string{"run-1", "run-2"}, removedIds)
	assert.WithinDuration(t, time.Now().Add(-job.retention), gotDeleteBefore, time.Minute)
}

func TestCleanupJob_InactiveStorageSkipsExportRemoval(t *testing.T) {
	repo := &cleanupRepositoryMock{
		RemoveDeletedProjectsFunc: func(deleteBefore time.Time) ([]string, int, error) {
			return []string{"run-1"}, 1, nil
		},
	}
	removeCalled := false
	storage := &minioStorageServiceMock{
		RemoveFilesFunc: func(ctx context.Context, tableName string, entityIds []string) error {
			removeCalled = true
			return nil
		},
	}
	c, job := newCleanupJobForTest(repo, storage, false)

	job.Run()

	assert.False(t, removeCalled)
	result := c.GetLastCleanupResult()
	if assert.NotNil(t, result) {
		assert.Equal(t, 0, result.DeletedRunExports)
	}
}

func TestCleanupJob_ExportRemovalFailureKeepsResult(t *testing.T) {
	repo := &cleanupRepositoryMock{
		RemoveDeletedProjectsFunc: func(deleteBefore time.Time) ([]string, int, error) {
			return []string{"run-1"}, 1, nil
		},
	}
	storage := &minioStorageServiceMock{
		RemoveFilesFunc: func(ctx context.Context, tableName string, entityIds []string) error {
			return errors.New("bucket unreachable")
		},
	}
	c, job := newCleanupJobForTest(repo, storage, true)

	job.Run()

	result := c.GetLastCleanupResult()
	if assert.NotNil(t, result) {
		assert.Equal(t, 1, result.DeletedProjects)
		assert.Equal(t, 0, result.DeletedRunExports)
	}
}

func TestCleanupJob_PurgeErrorSavesNothing(t *testing.T) {
	connectionsCalled := false
	repo := &cleanupRepositoryMock{
		RemoveDeletedProjectsFunc: func(deleteBefore time.Time) ([]string, int, error) {
			return nil, 0, errors.New("relation does not exist")
		},
		RemoveDeletedConnectionsFunc: func(deleteBefore time.Time) (int, error) {
			connectionsCalled = true
			return 0, nil
		},
	}
	c, job := newCleanupJobForTest(repo, &minioStorageServiceMock{}, true)

	job.Run()

	assert.False(t, connectionsCalled)
	assert.Nil(t, c.GetLastCleanupResult())
}
