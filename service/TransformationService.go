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

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/metrics"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	log "github.com/sirupsen/logrus"
)

type TransformationService interface {
	CreateIteration(req view.CreateIterationReq) (*view.TransformationIteration, error)
	GetIteration(runId string, transformationName string, iteration int) (*view.TransformationIteration, error)
	GetIterations(runId string) (*view.TransformationIterations, error)
	GetIterationsByName(runId string, transformationName string) (*view.TransformationIterations, error)
	GetNextIteration(runId string, transformationName string) (int, error)
	GetTransformationNames(runId string) (*view.TransformationNames, error)
	UpdateIterationStatus(runId string, transformationName string, iteration int, req view.UpdateJobStatusReq) error
}

// iterationConflictRetryLimit bounds the transparent retries after a concurrent
// insert took the computed iteration first.
const iterationConflictRetryLimit = 3

func NewTransformationService(transformationRepository repository.TransformationRepository,
	jobRepository repository.JobRepository) TransformationService {
	return &transformationServiceImpl{
		transformationRepository: transformationRepository,
		jobRepository:            jobRepository,
	}
}

type transformationServiceImpl struct {
	transformationRepository repository.TransformationRepository
	jobRepository            repository.JobRepository
}

func (t transformationServiceImpl) CreateIteration(req view.CreateIterationReq) (*view.TransformationIteration, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	latestVersion, err := t.jobRepository.GetLatestVersion(req.RunId)
	if err != nil {
		return nil, err
	}
	if latestVersion == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RunNotFound,
			Message: exception.RunNotFoundMsg,
			Params:  map[string]interface{}{"runId": req.RunId},
		}
	}
	if req.Iteration != 0 {
		log.Debugf("Iteration %d supplied for run %s is discarded, iterations are assigned on insert", req.Iteration, req.RunId)
	}

	ent := entity.MakeTransformationEntity(&req)
	err = t.insertWithRetry(ent)
	if err != nil {
		return nil, err
	}
	metrics.AssignedIterationsCount.WithLabelValues().Inc()

	return entity.MakeTransformationIterationView(ent), nil
}

// insertWithRetry recomputes the iteration from the committed maximum after each
// conflict with a concurrent insert for the same (run, transformation) pair.
func (t transformationServiceImpl) insertWithRetry(ent *entity.TransformationEntity) error {
	var err error
	for attempt := 0; attempt <= iterationConflictRetryLimit; attempt++ {
		err = t.transformationRepository.CreateIteration(ent)
		if err == nil {
			return nil
		}
		var customError *exception.CustomError
		if errors.As(err, &customError) && customError.Code == exception.IterationAlreadyExists {
			metrics.SequenceConflictRetriesCount.WithLabelValues("iteration").Inc()
			log.Warnf("Iteration %d of %s for run %s was taken by a concurrent insert, retrying",
				ent.Iteration, ent.TransformationName, ent.RunId)
			continue
		}
		return err
	}
	return err
}

func (t transformationServiceImpl) GetIteration(runId string, transformationName string, iteration int) (*view.TransformationIteration, error) {
	ent, err := t.transformationRepository.GetIteration(runId, transformationName, iteration)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.IterationNotFound,
			Message: exception.IterationNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId, "transformationName": transformationName, "iteration": iteration},
		}
	}
	return entity.MakeTransformationIterationView(ent), nil
}

func (t transformationServiceImpl) GetIterations(runId string) (*view.TransformationIterations, error) {
	ents, err := t.transformationRepository.GetIterations(runId)
	if err != nil {
		return nil, err
	}
	return makeIterationsView(ents), nil
}

func (t transformationServiceImpl) GetIterationsByName(runId string, transformationName string) (*view.TransformationIterations, error) {
	ents, err := t.transformationRepository.GetIterationsByName(runId, transformationName)
	if err != nil {
		return nil, err
	}
	return makeIterationsView(ents), nil
}

// GetNextIteration is advisory, a concurrent insert can take the returned value first.
func (t transformationServiceImpl) GetNextIteration(runId string, transformationName string) (int, error) {
	return t.transformationRepository.GetNextIteration(runId, transformationName)
}

func (t transformationServiceImpl) GetTransformationNames(runId string) (*view.TransformationNames, error) {
	names, err := t.transformationRepository.GetTransformationNames(runId)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = make([]string, 0)
	}
	return &view.TransformationNames{TransformationNames: names}, nil
}

func (t transformationServiceImpl) UpdateIterationStatus(runId string, transformationName string, iteration int, req view.UpdateJobStatusReq) error {
	status, err := view.ParseJobStatus(req.Status)
	if err != nil {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "status", "value": req.Status},
		}
	}
	return t.transformationRepository.UpdateIterationStatus(runId, transformationName, iteration, string(status), req.ErrorDetails)
}

func makeIterationsView(ents []entity.TransformationEntity) *view.TransformationIterations {
	iterations := make([]view.TransformationIteration, 0, len(ents))
	for _, ent := range ents {
		iterations = append(iterations, *entity.MakeTransformationIterationView(&ent))
	}
	return &view.TransformationIterations{Iterations: iterations}
}
