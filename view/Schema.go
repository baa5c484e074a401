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

type SchemaDetails struct {
	RunId           string     `json:"runId"`
	ProjectCode     string     `json:"projectCode"`
	SourceSchema    string     `json:"sourceSchema,omitempty"`
	ConvertedSchema string     `json:"convertedSchema,omitempty"`
	TableCount      int        `json:"tableCount"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type CreateSchemaDetailsReq struct {
	RunId        string `json:"runId" validate:"required"`
	ProjectCode  string `json:"projectCode" validate:"required"`
	SourceSchema string `json:"sourceSchema"`
	TableCount   int    `json:"tableCount"`
}

type UpdateSchemaConversionReq struct {
	ConvertedSchema string `json:"convertedSchema"`
	TableCount      int    `json:"tableCount"`
	Status          string `json:"status" validate:"required"`
}
