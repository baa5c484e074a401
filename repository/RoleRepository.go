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

type RoleRepository interface {
	CreateRole(ent *entity.RoleEntity) (bool, error)
	GetRole(id string) (*entity.RoleEntity, error)
	GetRoleByName(role string) (*entity.RoleEntity, error)
	GetAllRoles() ([]entity.RoleEntity, error)
	DeleteRole(id string) error
}

func NewRoleRepository(cp db.ConnectionProvider) RoleRepository {
	return &roleRepositoryImpl{cp: cp}
}

type roleRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (r roleRepositoryImpl) CreateRole(ent *entity.RoleEntity) (bool, error) {
	result, err := r.cp.GetConnection().Model(ent).
		OnConflict("(role) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r roleRepositoryImpl) GetRole(id string) (*entity.RoleEntity, error) {
	result := new(entity.RoleEntity)
	err := r.cp.GetConnection().Model(result).
		Where("id = ?", id).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r roleRepositoryImpl) GetRoleByName(role string) (*entity.RoleEntity, error) {
	result := new(entity.RoleEntity)
	err := r.cp.GetConnection().Model(result).
		Where("role = ?", role).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r roleRepositoryImpl) GetAllRoles() ([]entity.RoleEntity, error) {
	var result []entity.RoleEntity
	err := r.cp.GetConnection().Model(&result).
		Order("role ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r roleRepositoryImpl) DeleteRole(id string) error {
	result, err := r.cp.GetConnection().Model(&entity.RoleEntity{}).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"role": id},
		}
	}
	return nil
}
