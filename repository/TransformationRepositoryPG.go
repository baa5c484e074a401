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
	"github.com/go-pg/pg/v10"
)

func NewTransformationRepositoryPG(cp db.ConnectionProvider) (TransformationRepository, error) {
	return &transformationRepositoryImpl{cp: cp}, nil
}

type transformationRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (t transformationRepositoryImpl) CreateIteration(ent *entity.TransformationEntity) error {
	start := time.Now()
	ctx := context.Background()
	err := t.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextIteration int
		_, err := tx.QueryOne(pg.Scan(&nextIteration),
			`select coalesce(max(iteration), 0) + 1 from transformation_level_details where run_id = ? and transformation_name = ?`,
			ent.RunId, ent.TransformationName)
		if err != nil {
			return err
		}
		ent.Iteration = nextIteration
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.IterationAlreadyExists,
				Message: exception.IterationAlreadyExistsMsg,
				Params: map[string]interface{}{
					"runId":              ent.RunId,
					"iteration":          ent.Iteration,
					"transformationName": ent.TransformationName,
				},
				Debug: err.Error(),
			}
		}
		return err
	}
	utils.PerfLog(time.Since(start), 200*time.Millisecond, "CreateIteration")
	return nil
}

func (t transformationRepositoryImpl) GetNextIteration(runId string, transformationName string) (int, error) {
	latestIteration, err := t.GetLatestIteration(runId, transformationName)
	if err != nil {
		return 0, err
	}
	return latestIteration + 1, nil
}

func (t transformationRepositoryImpl) GetLatestIteration(runId string, transformationName string) (int, error) {
	var latestIteration int
	_, err := t.cp.GetConnection().QueryOne(pg.Scan(&latestIteration),
		`select coalesce(max(iteration), 0) from transformation_level_details where run_id = ? and transformation_name = ?`,
		runId, transformationName)
	if err != nil {
		if err == pg.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return latestIteration, nil
}

func (t transformationRepositoryImpl) GetIteration(runId string, transformationName string, iteration int) (*entity.TransformationEntity, error) {
	result := new(entity.TransformationEntity)
	err := t.cp.GetConnection().Model(result).
		Where("run_id = ?", runId).
		Where("transformation_name = ?", transformationName).
		Where("iteration = ?", iteration).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (t transformationRepositoryImpl) GetIterations(runId string) ([]entity.TransformationEntity, error) {
	var result []entity.TransformationEntity
	err := t.cp.GetConnection().Model(&result).
		Where("run_id = ?", runId).
		Order("transformation_name ASC").
		Order("iteration ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (t transformationRepositoryImpl) GetIterationsByName(runId string, transformationName string) ([]entity.TransformationEntity, error) {
	var result []entity.TransformationEntity
	err := t.cp.GetConnection().Model(&result).
		Where("run_id = ?", runId).
		Where("transformation_name = ?", transformationName).
		Order("iteration ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (t transformationRepositoryImpl) GetTransformationNames(runId string) ([]string, error) {
	var result []string
	_, err := t.cp.GetConnection().Query(&result,
		`select distinct transformation_name from transformation_level_details where run_id = ? order by transformation_name`,
		runId)
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (t transformationRepositoryImpl) UpdateIterationStatus(runId string, transformationName string, iteration int, status string, errorDetails string) error {
	result, err := t.cp.GetConnection().Model(&entity.TransformationEntity{}).
		Where("run_id = ?", runId).
		Where("transformation_name = ?", transformationName).
		Where("iteration = ?", iteration).
		Set("status = ?", status).
		Set("error_details = ?", errorDetails).
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.IterationNotFound,
			Message: exception.IterationNotFoundMsg,
			Params: map[string]interface{}{
				"runId":              runId,
				"iteration":          iteration,
				"transformationName": transformationName,
			},
		}
	}
	return nil
}
