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

package service

import (
	"net/http"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/google/uuid"
)

type RoleService interface {
	CreateRole(req view.CreateRoleReq) (*view.Role, error)
	GetRole(id string) (*view.Role, error)
	GetRoleByName(role string) (*view.Role, error)
	GetRoles() (*view.Roles, error)
	DeleteRole(id string) error
}

func NewRoleService(roleRepository repository.RoleRepository) RoleService {
	return &roleServiceImpl{
		roleRepository: roleRepository,
	}
}

type roleServiceImpl struct {
	roleRepository repository.RoleRepository
}

func (r roleServiceImpl) CreateRole(req view.CreateRoleReq) (*view.Role, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	ent := entity.MakeRoleEntity(uuid.New().String(), &req)
	created, err := r.roleRepository.CreateRole(ent)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &exception.CustomError{
			Status:  http.StatusConflict,
			Code:    exception.RoleAlreadyExists,
			Message: exception.RoleAlreadyExistsMsg,
			Params:  map[string]interface{}{"role": req.Role},
		}
	}
	return entity.MakeRoleView(ent), nil
}

func (r roleServiceImpl) GetRole(id string) (*view.Role, error) {
	ent, err := r.roleRepository.GetRole(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"role": id},
		}
	}
	return entity.MakeRoleView(ent), nil
}

func (r roleServiceImpl) GetRoleByName(role string) (*view.Role, error) {
	ent, err := r.roleRepository.GetRoleByName(role)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"role": role},
		}
	}
	return entity.MakeRoleView(ent), nil
}

func (r roleServiceImpl) GetRoles() (*view.Roles, error) {
	ents, err := r.roleRepository.GetAllRoles()
	if err != nil {
		return nil, err
	}
	roles := make([]view.Role, 0, len(ents))
	for _, ent := range ents {
		roles = append(roles, *entity.MakeRoleView(&ent))
	}
	return &view.Roles{Roles: roles}, nil
}

func (r roleServiceImpl) DeleteRole(id string) error {
	role, err := r.roleRepository.GetRole(id)
	if err != nil {
		return err
	}
	if role == nil {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"role": id},
		}
	}
	if isBuiltInRole(role.Role) {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.RoleNotEditable,
			Message: exception.RoleNotEditableMsg,
			Params:  map[string]interface{}{"role": role.Role},
		}
	}
	return r.roleRepository.DeleteRole(id)
}

func isBuiltInRole(role string) bool {
	return role == view.AdminRole || role == view.MaintainerRole || role == view.ViewerRole
}
