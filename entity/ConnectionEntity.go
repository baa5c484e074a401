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

type ConnectionEntity struct {
	tableName struct{} `pg:"connection_details, alias:connection_details"`

	ConnectionId   string                 `pg:"connection_id, pk, type:varchar"`
	ProjectCode    string                 `pg:"project_code, type:varchar"`
	ConnectionName string                 `pg:"connection_name, type:varchar, use_zero"`
	DatabaseType   string                 `pg:"database_type, type:varchar"`
	ConnectionKey  map[string]interface{} `pg:"connection_key, type:jsonb"`
	ConnectionTest string                 `pg:"connection_test, type:varchar, use_zero"`
	IsDeleted      bool                   `pg:"is_deleted, type:boolean, use_zero"`
	CreatedAt      time.Time              `pg:"created_at, type:timestamp without time zone"`
	CreatedBy      string                 `pg:"created_by, type:varchar"`
	UpdatedAt      *time.Time             `pg:"updated_at, type:timestamp without time zone"`
	UpdatedBy      string                 `pg:"updated_by, type:varchar"`
}

func MakeConnectionView(ent *ConnectionEntity) *view.Connection {
	return &view.Connection{
		ConnectionId:   ent.ConnectionId,
		ProjectCode:    ent.ProjectCode,
		ConnectionName: ent.ConnectionName,
		DatabaseType:   ent.DatabaseType,
		ConnectionKey:  ent.ConnectionKey,
		ConnectionTest: ent.ConnectionTest,
		CreatedAt:      ent.CreatedAt,
		CreatedBy:      ent.CreatedBy,
		UpdatedAt:      ent.UpdatedAt,
		UpdatedBy:      ent.UpdatedBy,
	}
}

func MakeConnectionEntity(req *view.CreateConnectionReq) *ConnectionEntity {
	return &ConnectionEntity{
		ProjectCode:    req.ProjectCode,
		ConnectionName: req.ConnectionName,
		DatabaseType:   req.DatabaseType,
		ConnectionKey:  req.ConnectionKey,
		ConnectionTest: string(view.ConnectionTestPending),
		CreatedAt:      time.Now(),
		CreatedBy:      req.CreatedBy,
	}
}
