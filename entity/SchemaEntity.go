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

type SchemaEntity struct {
	tableName struct{} `pg:"schema_details, alias:schema_details"`

	RunId           string     `pg:"run_id, pk, type:varchar"`
	ProjectCode     string     `pg:"project_code, type:varchar"`
	SourceSchema    string     `pg:"source_schema, type:varchar"`
	ConvertedSchema string     `pg:"converted_schema, type:varchar"`
	TableCount      int        `pg:"table_count, type:integer, use_zero"`
	Status          string     `pg:"status, type:varchar, use_zero"`
	CreatedAt       time.Time  `pg:"created_at, type:timestamp without time zone"`
	UpdatedAt       *time.Time `pg:"updated_at, type:timestamp without time zone"`
}

func MakeSchemaDetailsView(ent *SchemaEntity) *view.SchemaDetails {
	return &view.SchemaDetails{
		RunId:           ent.RunId,
		ProjectCode:     ent.ProjectCode,
		SourceSchema:    ent.SourceSchema,
		ConvertedSchema: ent.ConvertedSchema,
		TableCount:      ent.TableCount,
		Status:          ent.Status,
		CreatedAt:       ent.CreatedAt,
		UpdatedAt:       ent.UpdatedAt,
	}
}

func MakeSchemaEntity(req *view.CreateSchemaDetailsReq) *SchemaEntity {
	return &SchemaEntity{
		RunId:        req.RunId,
		ProjectCode:  req.ProjectCode,
		SourceSchema: req.SourceSchema,
		TableCount:   req.TableCount,
		Status:       string(view.StatusCreated),
		CreatedAt:    time.Now(),
	}
}
