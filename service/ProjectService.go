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
)

type ProjectService interface {
	CreateProject(req view.CreateProjectReq) (*view.Project, error)
	GetProject(projectCode string) (*view.Project, error)
	GetProjects(req view.ProjectsListReq) (*view.Projects, error)
	UpdateProjectStatus(projectCode string, status string, updatedBy string) error
	DeleteProject(projectCode string, deletedBy string) error
}

const (
	defaultProjectsLimit = 100
	maxProjectsLimit     = 500
)

func NewProjectService(projectRepository repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{
		projectRepository: projectRepository,
	}
}

type projectServiceImpl struct {
	projectRepository repository.ProjectRepository
}

func (p projectServiceImpl) CreateProject(req view.CreateProjectReq) (*view.Project, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	ent := entity.MakeProjectEntity(&req)
	err := p.projectRepository.CreateProject(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeProjectView(ent), nil
}

func (p projectServiceImpl) GetProject(projectCode string) (*view.Project, error) {
	ent, err := p.projectRepository.GetProject(projectCode)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": projectCode},
		}
	}
	return entity.MakeProjectView(ent), nil
}

func (p projectServiceImpl) GetProjects(req view.ProjectsListReq) (*view.Projects, error) {
	req.Limit, req.Page = utils.ClampPaging(req.Limit, req.Page, defaultProjectsLimit, maxProjectsLimit)
	ents, err := p.projectRepository.GetProjects(req)
	if err != nil {
		return nil, err
	}
	projects := make([]view.Project, 0, len(ents))
	for _, ent := range ents {
		projects = append(projects, *entity.MakeProjectView(&ent))
	}
	return &view.Projects{Projects: projects}, nil
}

func (p projectServiceImpl) UpdateProjectStatus(projectCode string, status string, updatedBy string) error {
	if status != view.ProjectStatusActive && status != view.ProjectStatusArchived {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "status", "value": status},
		}
	}
	return p.projectRepository.UpdateProjectStatus(projectCode, status, updatedBy)
}

func (p projectServiceImpl) DeleteProject(projectCode string, deletedBy string) error {
	return p.projectRepository.DeleteProject(projectCode, deletedBy)
}
