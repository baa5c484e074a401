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

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/stretchr/testify/assert"
)

type jobServiceMock struct {
	GetJobVersionsFunc func(runId string) (*view.JobVersions, error)
}

func (m *jobServiceMock) CreateJobVersion(req view.CreateJobVersionReq) (*view.JobVersion, error) {
	return nil, nil
}

func (m *jobServiceMock) GetJobVersion(runId string, version int) (*view.JobVersion, error) {
	return nil, nil
}

func (m *jobServiceMock) GetLatestJobVersion(runId string) (*view.JobVersion, error) {
	return nil, nil
}

func (m *jobServiceMock) GetJobVersions(runId string) (*view.JobVersions, error) {
	return m.GetJobVersionsFunc(runId)
}

func (m *jobServiceMock) GetNextVersion(runId string) (int, error) { return 0, nil }

func (m *jobServiceMock) UpdateJobStatus(runId string, version int, req view.UpdateJobStatusReq) error {
	return nil
}

func (m *jobServiceMock) GetRuns(req view.RunsListReq) (*view.Runs, error) { return nil, nil }

type transformationServiceMock struct {
	GetIterationsFunc func(runId string) (*view.TransformationIterations, error)
}

func (m *transformationServiceMock) CreateIteration(req view.CreateIterationReq) (*view.TransformationIteration, error) {
	return nil, nil
}

func (m *transformationServiceMock) GetIteration(runId string, transformationName string, iteration int) (*view.TransformationIteration, error) {
	return nil, nil
}

func (m *transformationServiceMock) GetIterations(runId string) (*view.TransformationIterations, error) {
	return m.GetIterationsFunc(runId)
}

func (m *transformationServiceMock) GetIterationsByName(runId string, transformationName string) (*view.TransformationIterations, error) {
	return nil, nil
}

func (m *transformationServiceMock) GetNextIteration(runId string, transformationName string) (int, error) {
	return 0, nil
}

func (m *transformationServiceMock) GetTransformationNames(runId string) (*view.TransformationNames, error) {
	return nil, nil
}

func (m *transformationServiceMock) UpdateIterationStatus(runId string, transformationName string, iteration int, req view.UpdateJobStatusReq) error {
	return nil
}

type schemaServiceMock struct {
	GetSchemaDetailsFunc func(runId string) (*view.SchemaDetails, error)
}

func (m *schemaServiceMock) CreateSchemaDetails(req view.CreateSchemaDetailsReq) (*view.SchemaDetails, error) {
	return nil, nil
}

func (m *schemaServiceMock) GetSchemaDetails(runId string) (*view.SchemaDetails, error) {
	return m.GetSchemaDetailsFunc(runId)
}

func (m *schemaServiceMock) GetSchemaDetailsForProject(projectCode string) ([]view.SchemaDetails, error) {
	return nil, nil
}

func (m *schemaServiceMock) UpdateSchemaConversion(runId string, req view.UpdateSchemaConversionReq) (*view.SchemaDetails, error) {
	return nil, nil
}

type dbtModelServiceMock struct {
	GetDbtArtifactsFunc func(runId string) (*view.DbtArtifactsList, error)
}

func (m *dbtModelServiceMock) SaveDbtArtifacts(req view.SaveDbtArtifactsReq) (*view.DbtArtifacts, error) {
	return nil, nil
}

func (m *dbtModelServiceMock) GetDbtArtifacts(runId string) (*view.DbtArtifactsList, error) {
	return m.GetDbtArtifactsFunc(runId)
}

func (m *dbtModelServiceMock) GetLatestDbtArtifacts(runId string) (*view.DbtArtifacts, error) {
	return nil, nil
}

func (m *dbtModelServiceMock) RenderDbtProject(runId string) (*view.DbtProject, error) {
	return nil, nil
}

func overviewTestService(versions *view.JobVersions, iterations *view.TransformationIterations,
	schema *view.SchemaDetails, schemaErr error, artifacts *view.DbtArtifactsList) RunOverviewService {
	return &runOverviewServiceImpl{
		jobService: &jobServiceMock{
			GetJobVersionsFunc: func(runId string) (*view.JobVersions, error) { return versions, nil },
		},
		transformationService: &transformationServiceMock{
			GetIterationsFunc: func(runId string) (*view.TransformationIterations, error) { return iterations, nil },
		},
		schemaService: &schemaServiceMock{
			GetSchemaDetailsFunc: func(runId string) (*view.SchemaDetails, error) { return schema, schemaErr },
		},
		dbtModelService: &dbtModelServiceMock{
			GetDbtArtifactsFunc: func(runId string) (*view.DbtArtifactsList, error) { return artifacts, nil },
		},
	}
}

func TestGetRunOverview_AggregatesAllParts(t *testing.T) {
	versions := &view.JobVersions{Versions: []view.JobVersion{
		{RunId: "R1", Version: 1, TokenCount: 10},
		{RunId: "R1", Version: 2, TokenCount: 20},
		{RunId: "R1", Version: 3, TokenCount: 30},
	}}
	iterations := &view.TransformationIterations{Iterations: []view.TransformationIteration{
		{RunId: "R1", Iteration: 1, TransformationName: "date_functions", TokenCount: 5},
		{RunId: "R1", Iteration: 2, TransformationName: "date_functions", TokenCount: 5},
		{RunId: "R1", Iteration: 1, TransformationName: "cte_rewrite", TokenCount: 5},
	}}
	schema := &view.SchemaDetails{RunId: "R1", Status: "success", TableCount: 12}
	artifacts := &view.DbtArtifactsList{Artifacts: []view.DbtArtifacts{{RunId: "R1"}}}

	service := overviewTestService(versions, iterations, schema, nil, artifacts)
	overview, err := service.GetRunOverview("R1")

	assert.NoError(t, err)
	assert.Equal(t, "R1", overview.RunId)
	assert.Len(t, overview.Versions, 3)
	assert.Len(t, overview.Transformations, 3)
	assert.NotNil(t, overview.Schema)
	assert.Len(t, overview.DbtArtifacts, 1)
	assert.Equal(t, 3, overview.Summary.VersionCount)
	assert.Equal(t, 3, overview.Summary.IterationCount)
	assert.Equal(t, 2, overview.Summary.TransformationCount)
	assert.Equal(t, 75, overview.Summary.TotalTokenCount)
}

func TestGetRunOverview_SchemaIsOptional(t *testing.T) {
	versions := &view.JobVersions{Versions: []view.JobVersion{{RunId: "R1", Version: 1}}}
	iterations := &view.TransformationIterations{Iterations: []view.TransformationIteration{}}
	schemaErr := &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.SchemaDetailsNotFound,
		Message: exception.SchemaDetailsNotFoundMsg,
		Params:  map[string]interface{}{"runId": "R1"},
	}
	artifacts := &view.DbtArtifactsList{Artifacts: []view.DbtArtifacts{}}

	service := overviewTestService(versions, iterations, nil, schemaErr, artifacts)
	overview, err := service.GetRunOverview("R1")

	assert.NoError(t, err)
	assert.Nil(t, overview.Schema)
	assert.Nil(t, overview.DbtArtifacts)
}

func TestGetRunOverview_VersionsErrorPropagates(t *testing.T) {
	runNotFound := &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.RunNotFound,
		Message: exception.RunNotFoundMsg,
		Params:  map[string]interface{}{"runId": "R404"},
	}
	service := &runOverviewServiceImpl{
		jobService: &jobServiceMock{
			GetJobVersionsFunc: func(runId string) (*view.JobVersions, error) { return nil, runNotFound },
		},
		transformationService: &transformationServiceMock{
			GetIterationsFunc: func(runId string) (*view.TransformationIterations, error) {
				return &view.TransformationIterations{Iterations: []view.TransformationIteration{}}, nil
			},
		},
		schemaService: &schemaServiceMock{
			GetSchemaDetailsFunc: func(runId string) (*view.SchemaDetails, error) { return nil, nil },
		},
		dbtModelService: &dbtModelServiceMock{
			GetDbtArtifactsFunc: func(runId string) (*view.DbtArtifactsList, error) {
				return &view.DbtArtifactsList{Artifacts: []view.DbtArtifacts{}}, nil
			},
		},
	}

	overview, err := service.GetRunOverview("R404")

	assert.Nil(t, overview)
	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.RunNotFound, customError.Code)
}

func TestMakeRunSummary_Empty(t *testing.T) {
	summary := makeRunSummary(nil, nil)
	assert.Equal(t, view.RunSummary{}, summary)
}
