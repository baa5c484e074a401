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

package repository

import (
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type JobRepository interface {
	// CreateJobVersion computes the next version for the run and inserts the
	// record with it in a single transaction. The version set on the entity by
	// the caller is ignored. A concurrent insert for the same run surfaces as
	// a version conflict.
	CreateJobVersion(ent *entity.JobEntity) error
	GetNextVersion(runId string) (int, error)
	GetLatestVersion(runId string) (int, error)
	GetJobVersion(runId string, version int) (*entity.JobEntity, error)
	GetJobVersions(runId string) ([]entity.JobEntity, error)
	UpdateJobStatus(runId string, version int, status string, errorDetails string) error
	GetRuns(req view.RunsListReq) ([]entity.RunEntity, error)
}
