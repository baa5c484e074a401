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

type SchemaService interface {
	CreateSchemaDetails(req view.CreateSchemaDetailsReq) (*view.SchemaDetails, error)
	GetSchemaDetails(runId string) (*view.SchemaDetails, error)
	GetSchemaDetailsForProject(projectCode string) ([]view.SchemaDetails, error)
	UpdateSchemaConversion(runId string, req view.UpdateSchemaConversionReq) (*view.SchemaDetails, error)
}

func NewSchemaService(schemaRepository repository.SchemaRepository,
	projectRepository repository.ProjectRepository) SchemaService {
	return &schemaServiceImpl{
		schemaRepository:  schemaRepository,
		projectRepository: projectRepository,
	}
}

type schemaServiceImpl struct {
	schemaRepository  repository.SchemaRepository
	projectRepository repository.ProjectRepository
}

func (s schemaServiceImpl) CreateSchemaDetails(req view.CreateSchemaDetailsReq) (*view.SchemaDetails, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	project, err := s.projectRepository.GetProject(req.ProjectCode)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": req.ProjectCode},
		}
	}
	ent := entity.MakeSchemaEntity(&req)
	err = s.schemaRepository.CreateSchemaDetails(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeSchemaDetailsView(ent), nil
}

func (s schemaServiceImpl) GetSchemaDetails(runId string) (*view.SchemaDetails, error) {
	ent, err := s.schemaRepository.GetSchemaDetails(runId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.SchemaDetailsNotFound,
			Message: exception.SchemaDetailsNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId},
		}
	}
	return entity.MakeSchemaDetailsView(ent), nil
}

func (s schemaServiceImpl) GetSchemaDetailsForProject(projectCode string) ([]view.SchemaDetails, error) {
	ents, err := s.schemaRepository.GetSchemaDetailsForProject(projectCode)
	if err != nil {
		return nil, err
	}
	result := make([]view.SchemaDetails, 0, len(ents))
	for _, ent := range ents {
		result = append(result, *entity.MakeSchemaDetailsView(&ent))
	}
	return result, nil
}

func (s schemaServiceImpl) UpdateSchemaConversion(runId string, req view.UpdateSchemaConversionReq) (*view.SchemaDetails, error) {
	status, err := view.ParseJobStatus(req.Status)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "status", "value": req.Status},
		}
	}
	err = s.schemaRepository.UpdateSchemaConversion(runId, req.ConvertedSchema, req.TableCount, string(status))
	if err != nil {
		return nil, err
	}
	return s.GetSchemaDetails(runId)
}
