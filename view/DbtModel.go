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

import (
	"encoding/json"
	"time"
)

// DbtArtifacts keeps generated dbt content as raw json, key order of the
// generator output is preserved for rendering.
type DbtArtifacts struct {
	RunId       string          `json:"runId"`
	Models      json.RawMessage `json:"models,omitempty"`
	TestCases   json.RawMessage `json:"testCases,omitempty"`
	Explanation json.RawMessage `json:"explanation,omitempty"`
	SchemaYml   string          `json:"schemaYml,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type DbtArtifactsList struct {
	Artifacts []DbtArtifacts `json:"artifacts"`
}

type SaveDbtArtifactsReq struct {
	RunId       string          `json:"runId" validate:"required"`
	Models      json.RawMessage `json:"models"`
	TestCases   json.RawMessage `json:"testCases"`
	Explanation json.RawMessage `json:"explanation"`
	SchemaYml   string          `json:"schemaYml"`
}

// DbtProject is the artifact set of a run laid out as dbt project files.
// Files keep the order the generator emitted the artifacts in.
type DbtProject struct {
	RunId string           `json:"runId"`
	Files []DbtProjectFile `json:"files"`
}

type DbtProjectFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
