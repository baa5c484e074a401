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
	"errors"
	"net/http"
	"testing"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/stretchr/testify/assert"
)

type schemaRepositoryMock struct {
	CreateSchemaDetailsFunc    func(ent *entity.SchemaEntity) error
	GetSchemaDetailsFunc       func(runId string) (*entity.SchemaEntity, error)
	UpdateSchemaConversionFunc func(runId string, convertedSchema string, tableCount int, status string) error
}

func (m *schemaRepositoryMock) CreateSchemaDetails(ent *entity.SchemaEntity) error {
	if m.CreateSchemaDetailsFunc != nil {
		return m.CreateSchemaDetailsFunc(ent)
	}
	return nil
}

func (m *schemaRepositoryMock) GetSchemaDetails(runId string) (*entity.SchemaEntity, error) {
	if m.GetSchemaDetailsFunc != nil {
		return m.GetSchemaDetailsFunc(runId)
	}
	return nil, nil
}

func (m *schemaRepositoryMock) GetSchemaDetailsForProject(projectCode string) ([]entity.SchemaEntity, error) {
	return nil, nil
}

func (m *schemaRepositoryMock) UpdateSchemaConversion(runId string, convertedSchema string, tableCount int, status string) error {
	if m.UpdateSchemaConversionFunc != nil {
		return m.UpdateSchemaConversionFunc(runId, convertedSchema, tableCount, status)
	}
	return nil
}

func TestCreateSchemaDetails_MissingRequiredParams(t *testing.T) {
	service := &schemaServiceImpl{
		schemaRepository:  &schemaRepositoryMock{},
		projectRepository: &projectRepositoryMock{},
	}

	_, err := service.CreateSchemaDetails(view.CreateSchemaDetailsReq{})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.RequiredParamsMissing, customError.Code)
	params := customError.Params["params"].(string)
	assert.Contains(t, params, "runId")
	assert.Contains(t, params, "projectCode")
}

func TestCreateSchemaDetails_ProjectNotFound(t *testing.T) {
	service := &schemaServiceImpl{
		schemaRepository: &schemaRepositoryMock{},
		projectRepository: &projectRepositoryMock{
			GetProjectFunc: func(projectCode string) (*entity.ProjectEntity, error) {
				return nil, nil
			},
		},
	}

	_, err := service.CreateSchemaDetails(view.CreateSchemaDetailsReq{RunId: "R1", ProjectCode: "PS404"})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, http.StatusNotFound, customError.Status)
	assert.Equal(t, exception.ProjectNotFound, customError.Code)
	assert.Equal(t, "PS404", customError.Params["projectCode"])
}

func TestCreateSchemaDetails_StoresDetails(t *testing.T) {
	var savedEntity *entity.SchemaEntity
	service := &schemaServiceImpl{
		schemaRepository: &schemaRepositoryMock{
			CreateSchemaDetailsFunc: func(ent *entity.SchemaEntity) error {
				savedEntity = ent
				return nil
			},
		},
		projectRepository: &projectRepositoryMock{},
	}

	result, err := service.CreateSchemaDetails(view.CreateSchemaDetailsReq{
		RunId:        "R1",
		ProjectCode:  "PS001",
		SourceSchema: "create table orders (id int)",
		TableCount:   1,
	})
	assert.NoError(t, err)
	assert.NotNil(t, savedEntity)
	assert.Equal(t, "R1", savedEntity.RunId)
	assert.Equal(t, "R1", result.RunId)
	assert.Equal(t, "PS001", result.ProjectCode)
	assert.Equal(t, 1, result.TableCount)
}

func TestGetSchemaDetails_NotFound(t *testing.T) {
	service := &schemaServiceImpl{
		schemaRepository:  &schemaRepositoryMock{},
		projectRepository: &projectRepositoryMock{},
	}

	_, err := service.GetSchemaDetails("R404")
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.SchemaDetailsNotFound, customError.Code)
	assert.Equal(t, "R404", customError.Params["runId"])
}

func TestUpdateSchemaConversion_InvalidStatus(t *testing.T) {
	service := &schemaServiceImpl{
		schemaRepository: &schemaRepositoryMock{
			UpdateSchemaConversionFunc: func(runId string, convertedSchema string, tableCount int, status string) error {
				t.Fatal("invalid status must not reach the repository")
				return nil
			},
		},
		projectRepository: &projectRepositoryMock{},
	}

	_, err := service.UpdateSchemaConversion("R1", view.UpdateSchemaConversionReq{Status: "paused"})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.InvalidParameterValue, customError.Code)
	assert.Equal(t, "status", customError.Params["param"])
	assert.Equal(t, "paused", customError.Params["value"])
}

func TestUpdateSchemaConversion_PassesParsedStatus(t *testing.T) {
	var receivedStatus string
	service := &schemaServiceImpl{
		schemaRepository: &schemaRepositoryMock{
			UpdateSchemaConversionFunc: func(runId string, convertedSchema string, tableCount int, status string) error {
				receivedStatus = status
				return nil
			},
			GetSchemaDetailsFunc: func(runId string) (*entity.SchemaEntity, error) {
				return &entity.SchemaEntity{RunId: runId, Status: "success"}, nil
			},
		},
		projectRepository: &projectRepositoryMock{},
	}

	result, err := service.UpdateSchemaConversion("R1", view.UpdateSchemaConversionReq{
		ConvertedSchema: "create table orders (id int) using delta",
		TableCount:      1,
		Status:          "success",
	})
	assert.NoError(t, err)
	assert.Equal(t, "success", receivedStatus)
	assert.Equal(t, "R1", result.RunId)
}
