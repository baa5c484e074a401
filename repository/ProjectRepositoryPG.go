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

const projectCodePrefix = "PS"
const projectCodeWidth = 3

func NewProjectRepositoryPG(cp db.ConnectionProvider) (ProjectRepository, error) {
	return &projectRepositoryImpl{cp: cp}, nil
}

type projectRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (p projectRepositoryImpl) CreateProject(ent *entity.ProjectEntity) error {
	ctx := context.Background()
	err := p.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		var nextNumber int
		_, err := tx.QueryOne(pg.Scan(&nextNumber),
			`select coalesce(max(substring(project_code from 3)::int), 0) + 1 from project`)
		if err != nil {
			return err
		}
		ent.ProjectCode = utils.FormatEntityCode(projectCodePrefix, projectCodeWidth, nextNumber)
		_, err = tx.Model(ent).Insert()
		return err
	})
	if err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return &exception.CustomError{
				Status:  http.StatusConflict,
				Code:    exception.EntityCodeAlreadyExists,
				Message: exception.EntityCodeAlreadyExistsMsg,
				Params:  map[string]interface{}{"code": ent.ProjectCode},
				Debug:   err.Error(),
			}
		}
		return err
	}
	return nil
}

func (p projectRepositoryImpl) GetProject(projectCode string) (*entity.ProjectEntity, error) {
	result := new(entity.ProjectEntity)
	err := p.cp.GetConnection().Model(result).
		Where("project_code = ?", projectCode).
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

func (p projectRepositoryImpl) GetProjects(req view.ProjectsListReq) ([]entity.ProjectEntity, error) {
	var result []entity.ProjectEntity
	query := p.cp.GetConnection().Model(&result).
		Order("project_code ASC").
		Offset(req.Page * req.Limit).
		Limit(req.Limit)
	if !req.ShowDeleted {
		query.Where("is_deleted = ?", false)
	}
	if req.OnlyActive {
		query.Where("status = ?", view.ProjectStatusActive)
	}
	if req.TextFilter != "" {
		filter := "%" + utils.LikeEscaped(req.TextFilter) + "%"
		query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr("project_code ilike ?", filter).
				WhereOr("project ilike ?", filter).
				WhereOr("description ilike ?", filter), nil
		})
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

func (p projectRepositoryImpl) UpdateProjectStatus(projectCode string, status string, updatedBy string) error {
	result, err := p.cp.GetConnection().Model(&entity.ProjectEntity{}).
		Where("project_code = ?", projectCode).
		Where("is_deleted = ?", false).
		Set("status = ?", status).
		Set("updated_at = now()").
		Set("updated_by = ?", updatedBy).
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": projectCode},
		}
	}
	return nil
}

func (p projectRepositoryImpl) DeleteProject(projectCode string, deletedBy string) error {
	result, err := p.cp.GetConnection().Model(&entity.ProjectEntity{}).
		Where("project_code = ?", projectCode).
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
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": projectCode},
		}
	}
	return nil
}
