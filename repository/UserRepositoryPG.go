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
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/go-pg/pg/v10"
)

func NewUserRepositoryPG(cp db.ConnectionProvider) (UserRepository, error) {
	return &userRepositoryImpl{cp: cp}, nil
}

type userRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (u userRepositoryImpl) SaveUser(ent *entity.UserEntity) (bool, error) {
	result, err := u.cp.GetConnection().Model(ent).
		OnConflict("(email) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (u userRepositoryImpl) GetUserById(userId string) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("user_id = ?", userId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUserByEmail(email string) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("email = ?", email).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUsers(req view.UsersListReq) ([]entity.UserEntity, error) {
	var result []entity.UserEntity
	query := u.cp.GetConnection().Model(&result).
		Order("username ASC").
		Offset(req.Page * req.Limit).
		Limit(req.Limit)
	if req.Filter != "" {
		filter := "%" + utils.LikeEscaped(req.Filter) + "%"
		query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr("user_id ilike ?", filter).
				WhereOr("username ilike ?", filter).
				WhereOr("email ilike ?", filter), nil
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

func (u userRepositoryImpl) UpdateUserPassword(userId string, passwordHash []byte) error {
	_, err := u.cp.GetConnection().Model(&entity.UserEntity{}).
		Set("password_hash = ?", passwordHash).
		Where("user_id = ?", userId).
		Update()
	return err
}

func (u userRepositoryImpl) UserIdExists(userId string) (bool, error) {
	count, err := u.cp.GetConnection().Model(&entity.UserEntity{}).
		Where("user_id = ?", userId).
		Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (u userRepositoryImpl) AssignProject(ent *entity.UserProjectEntity) (bool, error) {
	result, err := u.cp.GetConnection().Model(ent).
		OnConflict("(user_id, project_code) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (u userRepositoryImpl) GetUserProjects(userId string) ([]entity.UserProjectEntity, error) {
	var result []entity.UserProjectEntity
	err := u.cp.GetConnection().Model(&result).
		Where("user_id = ?", userId).
		Order("project_code ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) RemoveProject(userId string, projectCode string) error {
	result, err := u.cp.GetConnection().Model(&entity.UserProjectEntity{}).
		Where("user_id = ?", userId).
		Where("project_code = ?", projectCode).
		Delete()
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
