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

package view

import "time"

type JobVersion struct {
	RunId               string                 `json:"runId"`
	Version             int                    `json:"version"`
	ProjectCode         string                 `json:"projectCode"`
	ConnectionId        string                 `json:"connectionId,omitempty"`
	JobName             string                 `json:"jobName"`
	Status              string                 `json:"status"`
	SourceObject        string                 `json:"sourceObject,omitempty"`
	SourceDefinition    string                 `json:"sourceDefinition,omitempty"`
	ConvertedDefinition string                 `json:"convertedDefinition,omitempty"`
	ConversionMetadata  map[string]interface{} `json:"conversionMetadata,omitempty"`
	ErrorDetails        string                 `json:"errorDetails,omitempty"`
	TokenCount          int                    `json:"tokenCount"`
	ChunkCount          int                    `json:"chunkCount"`
	StartedAt           *time.Time             `json:"startedAt,omitempty"`
	CompletedAt         *time.Time             `json:"completedAt,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
	CreatedBy           string                 `json:"createdBy"`
}

type JobVersions struct {
	Versions []JobVersion `json:"versions"`
}

// CreateJobVersionReq carries a new conversion attempt for a run.
// Version is assigned by the service, any value supplied by the caller is discarded.
type CreateJobVersionReq struct {
	RunId               string                 `json:"runId" validate:"required"`
	Version             int                    `json:"version,omitempty"`
	ProjectCode         string                 `json:"projectCode" validate:"required"`
	ConnectionId        string                 `json:"connectionId"`
	JobName             string                 `json:"jobName"`
	SourceObject        string                 `json:"sourceObject"`
	SourceDefinition    string                 `json:"sourceDefinition"`
	ConvertedDefinition string                 `json:"convertedDefinition"`
	ConversionMetadata  map[string]interface{} `json:"conversionMetadata"`
	TokenCount          int                    `json:"tokenCount"`
	ChunkCount          int                    `json:"chunkCount"`
	CreatedBy           string                 `json:"createdBy" validate:"required"`
}

type UpdateJobStatusReq struct {
	Status       string `json:"status" validate:"required"`
	ErrorDetails string `json:"errorDetails"`
}

type Run struct {
	RunId         string    `json:"runId"`
	ProjectCode   string    `json:"projectCode"`
	JobName       string    `json:"jobName"`
	LatestVersion int       `json:"latestVersion"`
	Status        string    `json:"status"`
	LastCreatedAt time.Time `json:"lastCreatedAt"`
}

type Runs struct {
	Runs []Run `json:"runs"`
}

type RunsListReq struct {
	ProjectCode string `json:"projectCode"`
	TextFilter  string `json:"textFilter"`
	Limit       int    `json:"limit"`
	Page        int    `json:"page"`
}
