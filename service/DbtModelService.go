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
	"net/http"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/iancoleman/orderedmap"
	log "github.com/sirupsen/logrus"
)

type DbtModelService interface {
	SaveDbtArtifacts(req view.SaveDbtArtifactsReq) (*view.DbtArtifacts, error)
	GetDbtArtifacts(runId string) (*view.DbtArtifactsList, error)
	GetLatestDbtArtifacts(runId string) (*view.DbtArtifacts, error)
	RenderDbtProject(runId string) (*view.DbtProject, error)
}

func NewDbtModelService(dbtModelRepository repository.DbtModelRepository,
	jobRepository repository.JobRepository) DbtModelService {
	return &dbtModelServiceImpl{
		dbtModelRepository: dbtModelRepository,
		jobRepository:      jobRepository,
	}
}

type dbtModelServiceImpl struct {
	dbtModelRepository repository.DbtModelRepository
	jobRepository      repository.JobRepository
}

func (d dbtModelServiceImpl) SaveDbtArtifacts(req view.SaveDbtArtifactsReq) (*view.DbtArtifacts, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	latestVersion, err := d.jobRepository.GetLatestVersion(req.RunId)
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
	for param, data := range map[string]json.RawMessage{"models": req.Models, "testCases": req.TestCases, "explanation": req.Explanation} {
		if len(data) == 0 {
			continue
		}
		if !json.Valid(data) {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.IncorrectParamType,
				Message: exception.IncorrectParamTypeMsg,
				Params:  map[string]interface{}{"param": param, "type": "json"},
			}
		}
	}

	ent := entity.MakeDbtModelEntity(&req)
	err = d.dbtModelRepository.SaveDbtArtifacts(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeDbtArtifactsView(ent), nil
}

func (d dbtModelServiceImpl) GetDbtArtifacts(runId string) (*view.DbtArtifactsList, error) {
	ents, err := d.dbtModelRepository.GetDbtArtifacts(runId)
	if err != nil {
		return nil, err
	}
	artifacts := make([]view.DbtArtifacts, 0, len(ents))
	for _, ent := range ents {
		artifacts = append(artifacts, *entity.MakeDbtArtifactsView(&ent))
	}
	return &view.DbtArtifactsList{Artifacts: artifacts}, nil
}

func (d dbtModelServiceImpl) GetLatestDbtArtifacts(runId string) (*view.DbtArtifacts, error) {
	ent, err := d.dbtModelRepository.GetLatestDbtArtifacts(runId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.DbtArtifactsNotFound,
			Message: exception.DbtArtifactsNotFoundMsg,
			Params:  map[string]interface{}{"runId": runId},
		}
	}
	return entity.MakeDbtArtifactsView(ent), nil
}

// RenderDbtProject lays the latest artifacts of a run out as dbt project files.
// The generator's key order decides the file order.
func (d dbtModelServiceImpl) RenderDbtProject(runId string) (*view.DbtProject, error) {
	artifacts, err := d.GetLatestDbtArtifacts(runId)
	if err != nil {
		return nil, err
	}

	files := make([]view.DbtProjectFile, 0)
	files = append(files, renderArtifactFiles(artifacts.Models, "models/", ".sql", runId)...)
	if artifacts.SchemaYml != "" {
		files = append(files, view.DbtProjectFile{Path: "models/schema.yml", Content: artifacts.SchemaYml})
	}
	files = append(files, renderArtifactFiles(artifacts.TestCases, "tests/", ".sql", runId)...)
	files = append(files, renderArtifactFiles(artifacts.Explanation, "docs/", ".md", runId)...)

	return &view.DbtProject{RunId: runId, Files: files}, nil
}

func renderArtifactFiles(data json.RawMessage, pathPrefix string, extension string, runId string) []view.DbtProjectFile {
	if len(data) == 0 {
		return nil
	}
	artifactMap := orderedmap.New()
	err := json.Unmarshal(data, &artifactMap)
	if err != nil {
		log.Errorf("Failed to unmarshal %s artifacts for run %s: %s", pathPrefix, runId, err.Error())
		return nil
	}
	var files []view.DbtProjectFile
	for _, key := range artifactMap.Keys() {
		value, _ := artifactMap.Get(key)
		content, ok := value.(string)
		if !ok {
			raw, err := json.Marshal(value)
			if err != nil {
				log.Errorf("Failed to marshal %s artifact %s for run %s: %s", pathPrefix, key, runId, err.Error())
				continue
			}
			content = string(raw)
		}
		files = append(files, view.DbtProjectFile{Path: pathPrefix + key + extension, Content: content})
	}
	return files
}
