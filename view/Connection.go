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

const (
	DatabaseTypeSqlServer  = "sqlserver"
	DatabaseTypeDatabricks = "databricks"
)

type Connection struct {
	ConnectionId   string                 `json:"connectionId"`
	ProjectCode    string                 `json:"projectCode"`
	ConnectionName string                 `json:"connectionName"`
	DatabaseType   string                 `json:"databaseType"`
	ConnectionKey  map[string]interface{} `json:"connectionKey,omitempty"`
	ConnectionTest string                 `json:"connectionTest"`
	CreatedAt      time.Time              `json:"createdAt"`
	CreatedBy      string                 `json:"createdBy"`
	UpdatedAt      *time.Time             `json:"updatedAt,omitempty"`
	UpdatedBy      string                 `json:"updatedBy,omitempty"`
}

type Connections struct {
	Connections []Connection `json:"connections"`
}

type CreateConnectionReq struct {
	ProjectCode    string                 `json:"projectCode" validate:"required"`
	ConnectionName string                 `json:"connectionName" validate:"required"`
	DatabaseType   string                 `json:"databaseType" validate:"required"`
	ConnectionKey  map[string]interface{} `json:"connectionKey" validate:"required"`
	CreatedBy      string                 `json:"createdBy" validate:"required"`
}

type UpdateConnectionReq struct {
	ConnectionName string                 `json:"connectionName"`
	ConnectionKey  map[string]interface{} `json:"connectionKey"`
	UpdatedBy      string                 `json:"updatedBy" validate:"required"`
}
