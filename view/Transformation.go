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

type TransformationIteration struct {
	RunId              string    `json:"runId"`
	Iteration          int       `json:"iteration"`
	TransformationName string    `json:"transformationName"`
	InputDefinition    string    `json:"inputDefinition,omitempty"`
	OutputDefinition   string    `json:"outputDefinition,omitempty"`
	Status             string    `json:"status"`
	ErrorDetails       string    `json:"errorDetails,omitempty"`
	TokenCount         int       `json:"tokenCount"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

type TransformationIterations struct {
	Iterations []TransformationIteration `json:"iterations"`
}

// CreateIterationReq starts a new refinement pass of one transformation within a run.
// Iteration is assigned by the service, any value supplied by the caller is discarded.
type CreateIterationReq struct {
	RunId              string `json:"runId" validate:"required"`
	Iteration          int    `json:"iteration,omitempty"`
	TransformationName string `json:"transformationName" validate:"required"`
	InputDefinition    string `json:"inputDefinition"`
	OutputDefinition   string `json:"outputDefinition"`
	TokenCount         int    `json:"tokenCount"`
	CreatedBy          string `json:"createdBy" validate:"required"`
}

type TransformationNames struct {
	TransformationNames []string `json:"transformationNames"`
}
