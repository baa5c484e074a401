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
	"net/http"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/go-pg/pg/v10"
)

func NewSchemaRepositoryPG(cp db.ConnectionProvider) (SchemaRepository, error) {
	return &schemaRepositoryImpl{cp: cp}, nil
}

type schemaRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (s schemaRepositoryImpl) CreateSchemaDetails(ent *entity.SchemaEntity) error {
	_, err := s.cp.GetConnection().Model(ent).Insert()
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.SchemaDetailsAlreadyExist,
				Message: exception.SchemaDetailsAlreadyExistMsg,
				Params:  map[string]interface{}{"runId": ent.RunId},
				Debug:   err.Error(),
			}
		}
		return err
	}
	return nil
}

func (s schemaRepositoryImpl) GetSchemaDetails(runId string) (*entity.SchemaEntity, error) {
	result := new(entity.SchemaEntity)
	err := s.cp.GetConnection().Model(result).
		Where("run_id = ?", runId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (s schemaRepositoryImpl) GetSchemaDetailsForProject(projectCode string) ([]entity.SchemaEntity, error) {
	var result []entity.SchemaEntity
	err := s.cp.GetConnection().Model(&result).
		Where("project_code = ?", projectCode).
		Order("created_at DESC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (s schemaRepositoryImpl) UpdateSchemaConversion(runId string, convertedSchema string, tableCount int, status string) error {
	query := s.cp.GetConnection().Model(&entity.SchemaEntity{}).
		Where("run_id = ?", runId).
		Set("converted_schema = ?", convertedSchema).
		Set("status = ?", status).
		Set("updated_at = now()")
	if tableCount > 0 {
		query.Set("table_count = ?", tableCount)
	}
	result, err := query.Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.SchemaDetailsNotFound,
			Message: exception.SchemaDetailsNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId},
		}
	}
	return nil
}
