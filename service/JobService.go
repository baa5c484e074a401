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
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/cache"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/metrics"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/buraksezer/olric"
	log "github.com/sirupsen/logrus"
)

type JobService interface {
	CreateJobVersion(req view.CreateJobVersionReq) (*view.JobVersion, error)
	GetJobVersion(runId string, version int) (*view.JobVersion, error)
	GetLatestJobVersion(runId string) (*view.JobVersion, error)
	GetJobVersions(runId string) (*view.JobVersions, error)
	GetNextVersion(runId string) (int, error)
	UpdateJobStatus(runId string, version int, req view.UpdateJobStatusReq) error
	GetRuns(req view.RunsListReq) (*view.Runs, error)
}

// versionConflictRetryLimit bounds the transparent retries after a concurrent
// insert took the computed version first.
const versionConflictRetryLimit = 3

const (
	defaultRunsLimit = 100
	maxRunsLimit     = 500
)

func NewJobService(jobRepository repository.JobRepository,
	projectRepository repository.ProjectRepository,
	llmModelRepository repository.LlmModelRepository,
	op cache.OlricProvider) JobService {

	js := &jobServiceImpl{
		jobRepository:      jobRepository,
		projectRepository:  projectRepository,
		llmModelRepository: llmModelRepository,
		op:                 op,
		isReadyWg:          sync.WaitGroup{},
	}

	js.isReadyWg.Add(1)
	utils.SafeAsync(func() {
		js.initWhenOlricReady()
	})

	return js
}

const keySeparator = "|@@|"

type jobServiceImpl struct {
	jobRepository      repository.JobRepository
	projectRepository  repository.ProjectRepository
	llmModelRepository repository.LlmModelRepository

	op        cache.OlricProvider
	isReadyWg sync.WaitGroup
	olricC    *olric.Olric

	versions *olric.DMap
}

func (j *jobServiceImpl) initWhenOlricReady() {
	var err error
	hasErrors := false

	j.olricC = j.op.Get()
	j.versions, err = j.olricC.NewDMap("JobVersions")
	if err != nil {
		log.Errorf("Failed to create dmap JobVersions: %s", err.Error())
		hasErrors = true
	}

	if hasErrors {
		log.Infof("Failed to init JobService, going to retry")
		time.Sleep(time.Second * 5)
		j.initWhenOlricReady()
		return
	}

	j.isReadyWg.Done()
	log.Infof("JobService is ready")
}

func (j *jobServiceImpl) CreateJobVersion(req view.CreateJobVersionReq) (*view.JobVersion, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	project, err := j.projectRepository.GetProject(req.ProjectCode)
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
	if modelId := entity.Metadata(req.ConversionMetadata).GetStringValue(entity.MODEL_ID_KEY); modelId != "" {
		model, err := j.llmModelRepository.GetLlmModel(modelId)
		if err != nil {
			return nil, err
		}
		if model == nil {
			return nil, &exception.CustomError{
				Status:  http.StatusNotFound,
				Code:    exception.LlmModelNotFound,
				Message: exception.LlmModelNotFoundMsg,
				Params:  map[string]interface{}{"modelId": modelId},
			}
		}
	}
	if req.Version != 0 {
		log.Debugf("Version %d supplied for run %s is discarded, versions are assigned on insert", req.Version, req.RunId)
	}

	ent := entity.MakeJobEntity(&req)
	err = j.insertWithRetry(ent)
	if err != nil {
		return nil, err
	}
	metrics.AssignedVersionsCount.WithLabelValues().Inc()

	result := entity.MakeJobVersionView(ent)
	utils.SafeAsync(func() {
		j.putVersionToCache(result)
	})
	return result, nil
}

// insertWithRetry recomputes the version from the committed maximum after each
// conflict with a concurrent insert for the same run.
func (j *jobServiceImpl) insertWithRetry(ent *entity.JobEntity) error {
	var err error
	for attempt := 0; attempt <= versionConflictRetryLimit; attempt++ {
		err = j.jobRepository.CreateJobVersion(ent)
		if err == nil {
			return nil
		}
		var customError *exception.CustomError
		if errors.As(err, &customError) && customError.Code == exception.VersionAlreadyExists {
			metrics.SequenceConflictRetriesCount.WithLabelValues("version").Inc()
			log.Warnf("Version %d for run %s was taken by a concurrent insert, retrying", ent.Version, ent.RunId)
			continue
		}
		return err
	}
	return err
}

func (j *jobServiceImpl) GetJobVersion(runId string, version int) (*view.JobVersion, error) {
	j.isReadyWg.Wait()

	cached, err := j.getVersionFromCache(runId, version)
	if err != nil {
		log.Errorf("Failed to get job version from cache: %s", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	ent, err := j.jobRepository.GetJobVersion(runId, version)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.JobVersionNotFound,
			Message: exception.JobVersionNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId, "version": version},
		}
	}
	result := entity.MakeJobVersionView(ent)
	utils.SafeAsync(func() {
		j.putVersionToCache(result)
	})
	return result, nil
}

func (j *jobServiceImpl) GetLatestJobVersion(runId string) (*view.JobVersion, error) {
	latestVersion, err := j.jobRepository.GetLatestVersion(runId)
	if err != nil {
		return nil, err
	}
	if latestVersion == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RunNotFound,
			Message: exception.RunNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId},
		}
	}
	return j.GetJobVersion(runId, latestVersion)
}

func (j *jobServiceImpl) GetJobVersions(runId string) (*view.JobVersions, error) {
	ents, err := j.jobRepository.GetJobVersions(runId)
	if err != nil {
		return nil, err
	}
	if len(ents) == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RunNotFound,
			Message: exception.RunNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId},
		}
	}
	versions := make([]view.JobVersion, 0, len(ents))
	for _, ent := range ents {
		versions = append(versions, *entity.MakeJobVersionView(&ent))
	}
	return &view.JobVersions{Versions: versions}, nil
}

// GetNextVersion is advisory, a concurrent insert can take the returned value first.
func (j *jobServiceImpl) GetNextVersion(runId string) (int, error) {
	return j.jobRepository.GetNextVersion(runId)
}

func (j *jobServiceImpl) UpdateJobStatus(runId string, version int, req view.UpdateJobStatusReq) error {
	j.isReadyWg.Wait()

	status, err := view.ParseJobStatus(req.Status)
	if err != nil {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "status", "value": req.Status},
		}
	}
	err = j.jobRepository.UpdateJobStatus(runId, version, string(status), req.ErrorDetails)
	if err != nil {
		return err
	}
	err = j.versions.Delete(makeJobVersionKey(runId, version))
	if err != nil {
		log.Errorf("Failed to invalidate cached job version %s for run %s: %s", strconv.Itoa(version), runId, err.Error())
	}
	return nil
}

func (j *jobServiceImpl) GetRuns(req view.RunsListReq) (*view.Runs, error) {
	req.Limit, req.Page = utils.ClampPaging(req.Limit, req.Page, defaultRunsLimit, maxRunsLimit)
	ents, err := j.jobRepository.GetRuns(req)
	if err != nil {
		return nil, err
	}
	runs := make([]view.Run, 0, len(ents))
	for _, ent := range ents {
		runs = append(runs, *entity.MakeRunView(&ent))
	}
	return &view.Runs{Runs: runs}, nil
}

func makeJobVersionKey(runId string, version int) string {
	return runId + keySeparator + strconv.Itoa(version)
}

func (j *jobServiceImpl) putVersionToCache(version *view.JobVersion) {
	j.isReadyWg.Wait()

	data, err := json.Marshal(version)
	if err != nil {
		log.Errorf("Failed to marshal job version for cache: %s", err.Error())
		return
	}
	err = j.versions.Put(makeJobVersionKey(version.RunId, version.Version), data)
	if err != nil {
		log.Errorf("Failed to add job version to dmap: %s", err.Error())
	}
}

func (j *jobServiceImpl) getVersionFromCache(runId string, version int) (*view.JobVersion, error) {
	val, err := j.versions.Get(makeJobVersionKey(runId, version))
	if err != nil {
		if errors.Is(err, olric.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", val)
	}
	var result view.JobVersion
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
