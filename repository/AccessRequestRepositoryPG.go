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

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/go-pg/pg/v10"
)

const accessRequestCodePrefix = "REQ"
const accessRequestCodeWidth = 4

func NewAccessRequestRepositoryPG(cp db.ConnectionProvider) (AccessRequestRepository, error) {
	return &accessRequestRepositoryImpl{cp: cp}, nil
}

type accessRequestRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (a accessRequestRepositoryImpl) CreateAccessRequest(ent *entity.AccessRequestEntity) error {
	ctx := context.Background()
	err := a.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextNumber int
		_, err := tx.QueryOne(pg.Scan(&nextNumber),
			`select coalesce(max(substring(request_id from 4)::int), 0) + 1 from access_requests`)
		if err != nil {
			return err
		}
		ent.RequestId = utils.FormatEntityCode(accessRequestCodePrefix, accessRequestCodeWidth, nextNumber)
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.EntityCodeAlreadyExists,
				Message: exception.EntityCodeAlreadyExistsMsg,
				Params:  map[string]interface{}{"code": ent.RequestId},
				Debug:   err.Error(),
			}
		}
		return err
	}
	return nil
}

func (a accessRequestRepositoryImpl) GetAccessRequest(requestId string) (*entity.AccessRequestEntity, error) {
	result := new(entity.AccessRequestEntity)
	err := a.cp.GetConnection().Model(result).
		Where("request_id = ?", requestId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (a accessRequestRepositoryImpl) GetAccessRequests(projectCode string, status string) ([]entity.AccessRequestEntity, error) {
	var result []entity.AccessRequestEntity
	query := a.cp.GetConnection().Model(&result).
		Order("request_id ASC")
	if projectCode != "" {
		query.Where("project_code = ?", projectCode)
	}
	if status != "" {
		query.Where("status = ?", status)
	}
	err := query.Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (a accessRequestRepositoryImpl) ProcessAccessRequest(requestId string, status string, processedBy string, membership *entity.UserProjectEntity) error {
	ctx := context.Background()
	return a.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		result, err := tx.Model(&entity.AccessRequestEntity{}).
			Where("request_id = ?", requestId).
			Where("status = ?", string(view.AccessRequestPending)).
			Set("status = ?", status).
			Set("processed_by = ?", processedBy).
			Set("processed_at = now()").
			Update()
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.AccessRequestAlreadyProcessed,
				Message: exception.AccessRequestAlreadyProcessedMsg,
				Params:  map[string]interface{}{"requestId": requestId},
			}
		}
		if membership != nil {
			_, err = tx.Model(membership).
				OnConflict("(user_id, project_code) DO NOTHING").
				Insert()
			if err != nil {
				return err
			}
		}
		return nil
	})
}
