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

const llmModelCodePrefix = "LLM"
const llmModelCodeWidth = 3

func NewLlmModelRepositoryPG(cp db.ConnectionProvider) (LlmModelRepository, error) {
	return &llmModelRepositoryImpl{cp: cp}, nil
}

type llmModelRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (l llmModelRepositoryImpl) CreateLlmModel(ent *entity.LlmModelEntity) error {
	ctx := context.Background()
	err := l.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextNumber int
		_, err := tx.QueryOne(pg.Scan(&nextNumber),
			`select coalesce(max(substring(model_id from 4)::int), 0) + 1 from llm_models`)
		if err != nil {
			return err
		}
		ent.ModelId = utils.FormatEntityCode(llmModelCodePrefix, llmModelCodeWidth, nextNumber)
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.EntityCodeAlreadyExists,
				Message: exception.EntityCodeAlreadyExistsMsg,
				Params:  map[string]interface{}{"code": ent.ModelId},
				Debug:   err.Error(),
			}
		}
		return err
	}
	return nil
}

func (l llmModelRepositoryImpl) GetLlmModel(modelId string) (*entity.LlmModelEntity, error) {
	result := new(entity.LlmModelEntity)
	err := l.cp.GetConnection().Model(result).
		Where("model_id = ?", modelId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (l llmModelRepositoryImpl) GetLlmModels(onlyActive bool) ([]entity.LlmModelEntity, error) {
	var result []entity.LlmModelEntity
	query := l.cp.GetConnection().Model(&result).
		Order("model_id ASC")
	if onlyActive {
		query.Where("is_active = ?", true)
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

func (l llmModelRepositoryImpl) UpdateLlmModel(ent *entity.LlmModelEntity) error {
	_, err := l.cp.GetConnection().Model(ent).
		Where("model_id = ?", ent.ModelId).
		Update()
	return err
}

func (l llmModelRepositoryImpl) DeactivateLlmModel(modelId string, updatedBy string) error {
	result, err := l.cp.GetConnection().Model(&entity.LlmModelEntity{}).
		Where("model_id = ?", modelId).
		Where("is_active = ?", true).
		Set("is_active = ?", false).
		Set("updated_at = now()").
		Set("updated_by = ?", updatedBy).
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.LlmModelNotFound,
			Message: exception.LlmModelNotFoundMsg,
			Params:  map[string]interface{}{"modelId": modelId},
		}
	}
	return nil
}
