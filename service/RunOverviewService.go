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

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"golang.org/x/sync/errgroup"
)

type RunOverviewService interface {
	GetRunOverview(runId string) (*view.RunOverview, error)
}

func NewRunOverviewService(jobService JobService,
	transformationService TransformationService,
	schemaService SchemaService,
	dbtModelService DbtModelService) RunOverviewService {
	return &runOverviewServiceImpl{
		jobService:            jobService,
		transformationService: transformationService,
		schemaService:         schemaService,
		dbtModelService:       dbtModelService,
	}
}

type runOverviewServiceImpl struct {
	jobService            JobService
	transformationService TransformationService
	schemaService         SchemaService
	dbtModelService       DbtModelService
}

// GetRunOverview collects all the stored parts of a run. Schema details and dbt
// artifacts are optional, a run without them still has an overview.
func (r runOverviewServiceImpl) GetRunOverview(runId string) (*view.RunOverview, error) {
	var versions *view.JobVersions
	var iterations *view.TransformationIterations
	var schema *view.SchemaDetails
	var artifacts *view.DbtArtifactsList

	eg := errgroup.Group{}
	eg.Go(func() error {
		var err error
		versions, err = r.jobService.GetJobVersions(runId)
		return err
	})
	eg.Go(func() error {
		var err error
		iterations, err = r.transformationService.GetIterations(runId)
		return err
	})
	eg.Go(func() error {
		var err error
		schema, err = r.schemaService.GetSchemaDetails(runId)
		if isNotFound(err) {
			schema = nil
			return nil
		}
		return err
	})
	eg.Go(func() error {
		var err error
		artifacts, err = r.dbtModelService.GetDbtArtifacts(runId)
		return err
	})
	err := eg.Wait()
	if err != nil {
		return nil, err
	}

	overview := view.RunOverview{
		RunId:           runId,
		Versions:        versions.Versions,
		Transformations: iterations.Iterations,
		Schema:          schema,
		Summary:         makeRunSummary(versions.Versions, iterations.Iterations),
	}
	if artifacts != nil && len(artifacts.Artifacts) > 0 {
		overview.DbtArtifacts = artifacts.Artifacts
	}
	return &overview, nil
}

func makeRunSummary(versions []view.JobVersion, iterations []view.TransformationIteration) view.RunSummary {
	totalTokenCount := 0
	for _, version := range versions {
		totalTokenCount += version.TokenCount
	}
	transformationNames := map[string]struct{}{}
	for _, iteration := range iterations {
		totalTokenCount += iteration.TokenCount
		transformationNames[iteration.TransformationName] = struct{}{}
	}
	return view.RunSummary{
		VersionCount:        len(versions),
		IterationCount:      len(iterations),
		TransformationCount: len(transformationNames),
		TotalTokenCount:     totalTokenCount,
	}
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var customError *exception.CustomError
	return errors.As(err, &customError) && customError.Status == http.StatusNotFound
}
