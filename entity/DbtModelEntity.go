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
	"encoding/json"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

// DbtModelEntity rows are append-only, the table has no primary key.
// Raw json keeps the generator's key order intact.
type DbtModelEntity struct {
	tableName struct{} `pg:"dbt_models, alias:dbt_models"`

	RunId       string          `pg:"run_id, type:varchar, use_zero"`
	Models      json.RawMessage `pg:"models, type:jsonb"`
	TestCases   json.RawMessage `pg:"test_cases, type:jsonb"`
	Explanation json.RawMessage `pg:"explanation, type:jsonb"`
	SchemaYml   string          `pg:"schema_yml, type:varchar"`
	CreatedAt   time.Time       `pg:"created_at, type:timestamp without time zone"`
}

func MakeDbtArtifactsView(ent *DbtModelEntity) *view.DbtArtifacts {
	return &view.DbtArtifacts{
		RunId:       ent.RunId,
		Models:      ent.Models,
		TestCases:   ent.TestCases,
		Explanation: ent.Explanation,
		SchemaYml:   ent.SchemaYml,
		CreatedAt:   ent.CreatedAt,
	}
}

func MakeDbtModelEntity(req *view.SaveDbtArtifactsReq) *DbtModelEntity {
	return &DbtModelEntity{
		RunId:       req.RunId,
		Models:      req.Models,
		TestCases:   req.TestCases,
		Explanation: req.Explanation,
		SchemaYml:   req.SchemaYml,
		CreatedAt:   time.Now(),
	}
}
