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

type transformationRepositoryMock struct {
	CreateIterationFunc        func(ent *entity.TransformationEntity) error
	GetIterationFunc           func(runId string, transformationName string, iteration int) (*entity.TransformationEntity, error)
	GetIterationsFunc          func(runId string) ([]entity.TransformationEntity, error)
	GetTransformationNamesFunc func(runId string) ([]string, error)
	UpdateIterationStatusFunc  func(runId string, transformationName string, iteration int, status string, errorDetails string) error
}

func (m *transformationRepositoryMock) CreateIteration(ent *entity.TransformationEntity) error {
	return m.CreateIterationFunc(ent)
}

func (m *transformationRepositoryMock) GetNextIteration(runId string, transformationName string) (int, error) {
	return 0, nil
}

func (m *transformationRepositoryMock) GetLatestIteration(runId string, transformationName string) (int, error) {
	return 0, nil
}

func (m *transformationRepositoryMock) GetIteration(runId string, transformationName string, iteration int) (*entity.TransformationEntity, error) {
	if m.GetIterationFunc != nil {
		return m.GetIterationFunc(runId, transformationName, iteration)
	}
	return nil, nil
}

func (m *transformationRepositoryMock) GetIterations(runId string) ([]entity.TransformationEntity, error) {
	if m.GetIterationsFunc != nil {
		return m.GetIterationsFunc(runId)
	}
	return nil, nil
}

func (m *transformationRepositoryMock) GetIterationsByName(runId string, transformationName string) ([]entity.TransformationEntity, error) {
	return nil, nil
}

func (m *transformationRepositoryMock) GetTransformationNames(runId string) ([]string, error) {
	if m.GetTransformationNamesFunc != nil {
		return m.GetTransformationNamesFunc(runId)
	}
	return nil, nil
}

func (m *transformationRepositoryMock) UpdateIterationStatus(runId string, transformationName string, iteration int, status string, errorDetails string) error {
	if m.UpdateIterationStatusFunc != nil {
		return m.UpdateIterationStatusFunc(runId, transformationName, iteration, status, errorDetails)
	}
	return nil
}

// sequentialTransformationRepository reproduces the insert-time iteration
// assignment: the next iteration for a (run, transformation) pair is the
// committed maximum plus one.
type sequentialTransformationRepository struct {
	transformationRepositoryMock
	latest map[string]int
}

func newSequentialTransformationRepository() *sequentialTransformationRepository {
	r := &sequentialTransformationRepository{latest: map[string]int{}}
	r.CreateIterationFunc = func(ent *entity.TransformationEntity) error {
		key := ent.RunId + "/" + ent.TransformationName
		r.latest[key]++
		ent.Iteration = r.latest[key]
		return nil
	}
	return r
}

func existingRunJobRepository() *jobRepositoryMock {
	return &jobRepositoryMock{
		GetLatestVersionFunc: func(runId string) (int, error) {
			return 1, nil
		},
	}
}

func iterationConflictError(ent *entity.TransformationEntity) error {
	return &exception.CustomError{
		Status:  http.StatusConflict,
		Code:    exception.IterationAlreadyExists,
		Message: exception.IterationAlreadyExistsMsg,
		Params: map[string]interface{}{
			"runId":              ent.RunId,
			"transformationName": ent.TransformationName,
			"iteration":          ent.Iteration,
		},
	}
}

func makeCreateIterationReq(runId string, transformationName string) view.CreateIterationReq {
	return view.CreateIterationReq{
		RunId:              runId,
		TransformationName: transformationName,
		InputDefinition:    "SELECT GETDATE()",
		OutputDefinition:   "SELECT current_timestamp()",
		TokenCount:         42,
		CreatedBy:          "transformation-worker",
	}
}

func TestCreateIteration_ScopedToRunAndTransformation(t *testing.T) {
	repo := newSequentialTransformationRepository()
	service := &transformationServiceImpl{
		transformationRepository: repo,
		jobRepository:            existingRunJobRepository(),
	}

	first, err := service.CreateIteration(makeCreateIterationReq("R1", "date_functions"))
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Iteration)

	second, err := service.CreateIteration(makeCreateIterationReq("R1", "date_functions"))
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Iteration)

	otherName, err := service.CreateIteration(makeCreateIterationReq("R1", "cte_rewrite"))
	assert.NoError(t, err)
	assert.Equal(t, 1, otherName.Iteration, "a different transformation starts its own sequence")

	otherRun, err := service.CreateIteration(makeCreateIterationReq("R2", "date_functions"))
	assert.NoError(t, err)
	assert.Equal(t, 1, otherRun.Iteration, "a different run starts its own sequence")
}

func TestCreateIteration_SuppliedIterationDiscarded(t *testing.T) {
	var receivedIteration int
	repo := &transformationRepositoryMock{
		CreateIterationFunc: func(ent *entity.TransformationEntity) error {
			receivedIteration = ent.Iteration
			ent.Iteration = 1
			return nil
		},
	}
	service := &transformationServiceImpl{
		transformationRepository: repo,
		jobRepository:            existingRunJobRepository(),
	}

	req := makeCreateIterationReq("R1", "date_functions")
	req.Iteration = 999
	result, err := service.CreateIteration(req)

	assert.NoError(t, err)
	assert.Equal(t, 0, receivedIteration, "caller supplied iteration must not reach the insert")
	assert.Equal(t, 1, result.Iteration)
}

func TestCreateIteration_RunNotFound(t *testing.T) {
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{},
		jobRepository: &jobRepositoryMock{
			GetLatestVersionFunc: func(runId string) (int, error) {
				return 0, nil
			},
		},
	}

	_, err := service.CreateIteration(makeCreateIterationReq("R404", "date_functions"))

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.RunNotFound, customError.Code)
	assert.Equal(t, "R404", customError.Params["runId"])
}

func TestCreateIteration_RetryAfterConflict(t *testing.T) {
	attempts := 0
	repo := &transformationRepositoryMock{
		CreateIterationFunc: func(ent *entity.TransformationEntity) error {
			attempts++
			if attempts == 1 {
				return iterationConflictError(ent)
			}
			ent.Iteration = 2
			return nil
		},
	}
	service := &transformationServiceImpl{
		transformationRepository: repo,
		jobRepository:            existingRunJobRepository(),
	}

	result, err := service.CreateIteration(makeCreateIterationReq("R1", "date_functions"))

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, result.Iteration)
}

func TestCreateIteration_RetriesExhausted(t *testing.T) {
	attempts := 0
	repo := &transformationRepositoryMock{
		CreateIterationFunc: func(ent *entity.TransformationEntity) error {
			attempts++
			return iterationConflictError(ent)
		},
	}
	service := &transformationServiceImpl{
		transformationRepository: repo,
		jobRepository:            existingRunJobRepository(),
	}

	result, err := service.CreateIteration(makeCreateIterationReq("R1", "date_functions"))

	assert.Nil(t, result)
	assert.Equal(t, iterationConflictRetryLimit+1, attempts)
	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.IterationAlreadyExists, customError.Code)
}

func TestCreateIteration_MissingRequiredParams(t *testing.T) {
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{
			CreateIterationFunc: func(ent *entity.TransformationEntity) error {
				t.Fatal("insert should not be reached for an invalid request")
				return nil
			},
		},
		jobRepository: existingRunJobRepository(),
	}

	_, err := service.CreateIteration(view.CreateIterationReq{RunId: "R1"})

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.RequiredParamsMissing, customError.Code)
	assert.Contains(t, customError.Params["params"], "transformationName")
	assert.Contains(t, customError.Params["params"], "createdBy")
}

func TestGetIteration_NotFound(t *testing.T) {
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{},
	}

	_, err := service.GetIteration("R1", "date_functions", 5)

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.IterationNotFound, customError.Code)
	assert.Equal(t, "R1", customError.Params["runId"])
	assert.Equal(t, "date_functions", customError.Params["transformationName"])
	assert.Equal(t, 5, customError.Params["iteration"])
}

func TestGetTransformationNames_EmptyRun(t *testing.T) {
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{},
	}

	result, err := service.GetTransformationNames("R1")

	assert.NoError(t, err)
	assert.NotNil(t, result.TransformationNames)
	assert.Len(t, result.TransformationNames, 0)
}

func TestUpdateIterationStatus_InvalidStatus(t *testing.T) {
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{
			UpdateIterationStatusFunc: func(runId string, transformationName string, iteration int, status string, errorDetails string) error {
				t.Fatal("update should not be reached for an unknown status")
				return nil
			},
		},
	}

	err := service.UpdateIterationStatus("R1", "date_functions", 1, view.UpdateJobStatusReq{Status: "bogus"})

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	assert.Equal(t, exception.InvalidParameterValue, customError.Code)
}

func TestUpdateIterationStatus_PassesParsedStatus(t *testing.T) {
	var receivedStatus string
	service := &transformationServiceImpl{
		transformationRepository: &transformationRepositoryMock{
			UpdateIterationStatusFunc: func(runId string, transformationName string, iteration int, status string, errorDetails string) error {
				receivedStatus = status
				return nil
			},
		},
	}

	err := service.UpdateIterationStatus("R1", "date_functions", 1, view.UpdateJobStatusReq{Status: "success"})

	assert.NoError(t, err)
	assert.Equal(t, "success", receivedStatus)
}
