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
	"context"
	"net/http"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/go-pg/pg/v10"
)

func NewJobRepositoryPG(cp db.ConnectionProvider) (JobRepository, error) {
	return &jobRepositoryImpl{cp: cp}, nil
}

type jobRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (j jobRepositoryImpl) CreateJobVersion(ent *entity.JobEntity) error {
	start := time.Now()
	ctx := context.Background()
	err := j.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextVersion int
		_, err := tx.QueryOne(pg.Scan(&nextVersion),
			`select coalesce(max(version), 0) + 1 from job_details where run_id = ?`, ent.RunId)
		if err != nil {
			return err
		}
		ent.Version = nextVersion
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.VersionAlreadyExists,
				Message: exception.VersionAlreadyExistsMsg,
				Params:  map[string]interface{}{"runId": ent.RunId, "version": ent.Version},
				Debug:   err.Error(),
			}
		}
		return err
	}
	utils.PerfLog(time.Since(start), 200*time.Millisecond, "CreateJobVersion")
	return nil
}

func (j jobRepositoryImpl) GetNextVersion(runId string) (int, error) {
	latestVersion, err := j.GetLatestVersion(runId)
	if err != nil {
		return 0, err
	}
	return latestVersion + 1, nil
}

func (j jobRepositoryImpl) GetLatestVersion(runId string) (int, error) {
	var latestVersion int
	_, err := j.cp.GetConnection().QueryOne(pg.Scan(&latestVersion),
		`select coalesce(max(version), 0) from job_details where run_id = ?`, runId)
	if err != nil {
		if err == pg.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return latestVersion, nil
}

func (j jobRepositoryImpl) GetJobVersion(runId string, version int) (*entity.JobEntity, error) {
	result := new(entity.JobEntity)
	err := j.cp.GetConnection().Model(result).
		Where("run_id = ?", runId).
		Where("version = ?", version).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (j jobRepositoryImpl) GetJobVersions(runId string) ([]entity.JobEntity, error) {
	var result []entity.JobEntity
	err := j.cp.GetConnection().Model(&result).
		Where("run_id = ?", runId).
		Order("version ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (j jobRepositoryImpl) UpdateJobStatus(runId string, version int, status string, errorDetails string) error {
	query := j.cp.GetConnection().Model(&entity.JobEntity{}).
		Where("run_id = ?", runId).
		Where("version = ?", version).
		Set("status = ?", status).
		Set("error_details = ?", errorDetails)
	if status == string(view.StatusSuccess) || status == string(view.StatusFailed) || status == string(view.StatusCancelled) {
		query.Set("completed_at = now()")
	}
	result, err := query.Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.JobVersionNotFound,
			Message: exception.JobVersionNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId, "version": version},
		}
	}
	return nil
}

func (j jobRepositoryImpl) GetRuns(req view.RunsListReq) ([]entity.RunEntity, error) {
	var result []entity.RunEntity
	textFilter := ""
	if req.TextFilter != "" {
		textFilter = "%" + utils.LikeEscaped(req.TextFilter) + "%"
	}
	query := `
		select * from (
			select distinct on (run_id)
				run_id, project_code, job_name, version as latest_version, status, created_at as last_created_at
			from job_details
			where (? = '' or project_code = ?)
			  and (? = '' or run_id ilike ? or job_name ilike ?)
			order by run_id, version desc
		) runs
		order by last_created_at desc
		limit ? offset ?`
	_, err := j.cp.GetConnection().Query(&result, query,
		req.ProjectCode, req.ProjectCode,
		textFilter, textFilter, textFilter,
		req.Limit, req.Page*req.Limit)
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
