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
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/stretchr/testify/assert"
)

type dbtModelRepositoryMock struct {
	SaveDbtArtifactsFunc      func(ent *entity.DbtModelEntity) error
	GetDbtArtifactsFunc       func(runId string) ([]entity.DbtModelEntity, error)
	GetLatestDbtArtifactsFunc func(runId string) (*entity.DbtModelEntity, error)
}

func (m *dbtModelRepositoryMock) SaveDbtArtifacts(ent *entity.DbtModelEntity) error {
	if m.SaveDbtArtifactsFunc != nil {
		return m.SaveDbtArtifactsFunc(ent)
	}
	return nil
}

func (m *dbtModelRepositoryMock) GetDbtArtifacts(runId string) ([]entity.DbtModelEntity, error) {
	if m.GetDbtArtifactsFunc != nil {
		return m.GetDbtArtifactsFunc(runId)
	}
	return nil, nil
}

func (m *dbtModelRepositoryMock) GetLatestDbtArtifacts(runId string) (*entity.DbtModelEntity, error) {
	if m.GetLatestDbtArtifactsFunc != nil {
		return m.GetLatestDbtArtifactsFunc(runId)
	}
	return nil, nil
}

func TestSaveDbtArtifacts_RunNotFound(t *testing.T) {
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{},
		jobRepository: &jobRepositoryMock{
			GetLatestVersionFunc: func(runId string) (int, error) { return 0, nil },
		},
	}

	_, err := service.SaveDbtArtifacts(view.SaveDbtArtifactsReq{RunId: "R404"})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, http.StatusNotFound, customError.Status)
	assert.Equal(t, exception.RunNotFound, customError.Code)
	assert.Equal(t, "R404", customError.Params["runId"])
}

func TestSaveDbtArtifacts_InvalidJsonRejected(t *testing.T) {
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{
			SaveDbtArtifactsFunc: func(ent *entity.DbtModelEntity) error {
				t.Fatal("artifacts with invalid json must not reach the repository")
				return nil
			},
		},
		jobRepository: existingRunJobRepository(),
	}

	_, err := service.SaveDbtArtifacts(view.SaveDbtArtifactsReq{
		RunId:  "R1",
		Models: json.RawMessage(`{"stg_orders": `),
	})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.IncorrectParamType, customError.Code)
	assert.Equal(t, "models", customError.Params["param"])
	assert.Equal(t, "json", customError.Params["type"])
}

func TestSaveDbtArtifacts_StoresArtifacts(t *testing.T) {
	var savedEntity *entity.DbtModelEntity
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{
			SaveDbtArtifactsFunc: func(ent *entity.DbtModelEntity) error {
				savedEntity = ent
				return nil
			},
		},
		jobRepository: existingRunJobRepository(),
	}

	models := json.RawMessage(`{"stg_orders": "select 1"}`)
	result, err := service.SaveDbtArtifacts(view.SaveDbtArtifactsReq{
		RunId:     "R1",
		Models:    models,
		SchemaYml: "version: 2",
	})
	assert.NoError(t, err)
	assert.NotNil(t, savedEntity)
	assert.Equal(t, "R1", savedEntity.RunId)
	assert.Equal(t, models, savedEntity.Models)
	assert.Equal(t, "R1", result.RunId)
	assert.Equal(t, "version: 2", result.SchemaYml)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestGetLatestDbtArtifacts_NotFound(t *testing.T) {
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{},
		jobRepository:      &jobRepositoryMock{},
	}

	_, err := service.GetLatestDbtArtifacts("R404")
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.DbtArtifactsNotFound, customError.Code)
}

func TestRenderDbtProject_KeepsGeneratorOrder(t *testing.T) {
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{
			GetLatestDbtArtifactsFunc: func(runId string) (*entity.DbtModelEntity, error) {
				return &entity.DbtModelEntity{
					RunId:       runId,
					Models:      json.RawMessage(`{"stg_orders": "select 1", "dim_customer": "select 2"}`),
					TestCases:   json.RawMessage(`{"assert_positive_amount": "select * from orders where amount < 0"}`),
					Explanation: json.RawMessage(`{"stg_orders": "staging model for orders"}`),
					SchemaYml:   "version: 2",
				}, nil
			},
		},
		jobRepository: &jobRepositoryMock{},
	}

	project, err := service.RenderDbtProject("R1")
	assert.NoError(t, err)
	assert.Equal(t, "R1", project.RunId)

	paths := make([]string, 0, len(project.Files))
	for _, file := range project.Files {
		paths = append(paths, file.Path)
	}
	assert.Equal(t, []string{
		"models/stg_orders.sql",
		"models/dim_customer.sql",
		"models/schema.yml",
		"tests/assert_positive_amount.sql",
		"docs/stg_orders.md",
	}, paths)
	assert.Equal(t, "select 1", project.Files[0].Content)
	assert.Equal(t, "version: 2", project.Files[2].Content)
}

func TestRenderDbtProject_NonStringArtifactMarshalled(t *testing.T) {
	service := &dbtModelServiceImpl{
		dbtModelRepository: &dbtModelRepositoryMock{
			GetLatestDbtArtifactsFunc: func(runId string) (*entity.DbtModelEntity, error) {
				return &entity.DbtModelEntity{
					RunId:  runId,
					Models: json.RawMessage(`{"stg_orders": {"sql": "select 1"}}`),
				}, nil
			},
		},
		jobRepository: &jobRepositoryMock{},
	}

	project, err := service.RenderDbtProject("R1")
	assert.NoError(t, err)
	assert.Len(t, project.Files, 1)
	assert.Equal(t, "models/stg_orders.sql", project.Files[0].Path)
	assert.JSONEq(t, `{"sql": "select 1"}`, project.Files[0].Content)
}
