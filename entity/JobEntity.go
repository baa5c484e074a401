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

package entity

import (
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type JobEntity struct {
	tableName struct{} `pg:"job_details, alias:job_details"`

	RunId               string     `pg:"run_id, pk, type:varchar"`
	Version             int        `pg:"version, pk, type:integer"`
	ProjectCode         string     `pg:"project_code, type:varchar"`
	ConnectionId        string     `pg:"connection_id, type:varchar"`
	JobName             string     `pg:"job_name, type:varchar"`
	Status              string     `pg:"status, type:varchar, use_zero"`
	SourceObject        string     `pg:"source_object, type:varchar"`
	SourceDefinition    string     `pg:"source_definition, type:varchar"`
	ConvertedDefinition string     `pg:"converted_definition, type:varchar"`
	ConversionMetadata  Metadata   `pg:"conversion_metadata, type:jsonb"`
	ErrorDetails        string     `pg:"error_details, type:varchar"`
	TokenCount          int        `pg:"token_count, type:integer, use_zero"`
	ChunkCount          int        `pg:"chunk_count, type:integer, use_zero"`
	StartedAt           *time.Time `pg:"started_at, type:timestamp without time zone"`
	CompletedAt         *time.Time `pg:"completed_at, type:timestamp without time zone"`
	CreatedAt           time.Time  `pg:"created_at, type:timestamp without time zone"`
	CreatedBy           string     `pg:"created_by, type:varchar"`
}

// RunEntity is a query result for the runs listing, one row per run_id.
type RunEntity struct {
	RunId         string    `pg:"run_id"`
	ProjectCode   string    `pg:"project_code"`
	JobName       string    `pg:"job_name"`
	LatestVersion int       `pg:"latest_version"`
	Status        string    `pg:"status"`
	LastCreatedAt time.Time `pg:"last_created_at"`
}

func MakeJobVersionView(ent *JobEntity) *view.JobVersion {
	return &view.JobVersion{
		RunId:               ent.RunId,
		Version:             ent.Version,
		ProjectCode:         ent.ProjectCode,
		ConnectionId:        ent.ConnectionId,
		JobName:             ent.JobName,
		Status:              ent.Status,
		SourceObject:        ent.SourceObject,
		SourceDefinition:    ent.SourceDefinition,
		ConvertedDefinition: ent.ConvertedDefinition,
		ConversionMetadata:  ent.ConversionMetadata,
		ErrorDetails:        ent.ErrorDetails,
		TokenCount:          ent.TokenCount,
		ChunkCount:          ent.ChunkCount,
		StartedAt:           ent.StartedAt,
		CompletedAt:         ent.CompletedAt,
		CreatedAt:           ent.CreatedAt,
		CreatedBy:           ent.CreatedBy,
	}
}

// MakeJobEntity builds the entity without a version, it is assigned on insert.
func MakeJobEntity(req *view.CreateJobVersionReq) *JobEntity {
	now := time.Now()
	return &JobEntity{
		RunId:               req.RunId,
		ProjectCode:         req.ProjectCode,
		ConnectionId:        req.ConnectionId,
		JobName:             req.JobName,
		Status:              string(view.StatusCreated),
		SourceObject:        req.SourceObject,
		SourceDefinition:    req.SourceDefinition,
		ConvertedDefinition: req.ConvertedDefinition,
		ConversionMetadata:  req.ConversionMetadata,
		TokenCount:          req.TokenCount,
		ChunkCount:          req.ChunkCount,
		StartedAt:           &now,
		CreatedAt:           now,
		CreatedBy:           req.CreatedBy,
	}
}

func MakeRunView(ent *RunEntity) *view.Run {
	return &view.Run{
		RunId:         ent.RunId,
		ProjectCode:   ent.ProjectCode,
		JobName:       ent.JobName,
		LatestVersion: ent.LatestVersion,
		Status:        ent.Status,
		LastCreatedAt: ent.LastCreatedAt,
	}
}
