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
	"github.com/go-pg/pg/v10"
)

const connectionCodePrefix = "CON"
const connectionCodeWidth = 3

func NewConnectionRepositoryPG(cp db.ConnectionProvider) (ConnectionRepository, error) {
	return &connectionRepositoryImpl{cp: cp}, nil
}

type connectionRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (c connectionRepositoryImpl) CreateConnection(ent *entity.ConnectionEntity) error {
	ctx := context.Background()
	err := c.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextNumber int
		_, err := tx.QueryOne(pg.Scan(&nextNumber),
			`select coalesce(max(substring(connection_id from 4)::int), 0) + 1 from connection_details`)
		if err != nil {
			return err
		}
		ent.ConnectionId = utils.FormatEntityCode(connectionCodePrefix, connectionCodeWidth, nextNumber)
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.EntityCodeAlreadyExists,
				Message: exception.EntityCodeAlreadyExistsMsg,
				Params:  map[string]interface{}{"code": ent.ConnectionId},
				Debug:   err.Error(),
			}
		}
		return err
	}
	return nil
}

func (c connectionRepositoryImpl) GetConnection(connectionId string) (*entity.ConnectionEntity, error) {
	result := new(entity.ConnectionEntity)
	err := c.cp.GetConnection().Model(result).
		Where("connection_id = ?", connectionId).
		Where("is_deleted = ?", false).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (c connectionRepositoryImpl) GetConnections(projectCode string) ([]entity.ConnectionEntity, error) {
	var result []entity.ConnectionEntity
	query := c.cp.GetConnection().Model(&result).
		Where("is_deleted = ?", false).
		Order("connection_id ASC")
	if projectCode != "" {
		query.Where("project_code = ?", projectCode)
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

func (c connectionRepositoryImpl) UpdateConnection(ent *entity.ConnectionEntity) error {
	_, err := c.cp.GetConnection().Model(ent).
		Where("connection_id = ?", ent.ConnectionId).
		Update()
	return err
}

func (c connectionRepositoryImpl) UpdateConnectionTestStatus(connectionId string, status string) error {
	result, err := c.cp.GetConnection().Model(&entity.ConnectionEntity{}).
		Where("connection_id = ?", connectionId).
		Set("connection_test = ?", status).
		Set("updated_at = now()").
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ConnectionNotFound,
			Message: exception.ConnectionNotFoundMsg,
			Params:  map[string]interface{}{"connectionId": connectionId},
		}
	}
	return nil
}

func (c connectionRepositoryImpl) DeleteConnection(connectionId string, deletedBy string) error {
	result, err := c.cp.GetConnection().Model(&entity.ConnectionEntity{}).
		Where("connection_id = ?", connectionId).
		Where("is_deleted = ?", false).
		Set("is_deleted = ?", true).
		Set("updated_at = now()").
		Set("updated_by = ?", deletedBy).
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ConnectionNotFound,
			Message: exception.ConnectionNotFoundMsg,
			Params:  map[string]interface{}{"connectionId": connectionId},
		}
	}
	return nil
}
