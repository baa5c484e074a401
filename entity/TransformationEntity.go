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

type TransformationEntity struct {
	tableName struct{} `pg:"transformation_level_details, alias:transformation_level_details"`

	RunId              string    `pg:"run_id, pk, type:varchar"`
	Iteration          int       `pg:"iteration, pk, type:integer"`
	TransformationName string    `pg:"transformation_name, pk, type:varchar"`
	InputDefinition    string    `pg:"input_definition, type:varchar"`
	OutputDefinition   string    `pg:"output_definition, type:varchar"`
	Status             string    `pg:"status, type:varchar, use_zero"`
	ErrorDetails       string    `pg:"error_details, type:varchar"`
	TokenCount         int       `pg:"token_count, type:integer, use_zero"`
	CreatedAt          time.Time `pg:"created_at, type:timestamp without time zone"`
	CreatedBy          string    `pg:"created_by, type:varchar"`
}

func MakeTransformationIterationView(ent *TransformationEntity) *view.TransformationIteration {
	return &view.TransformationIteration{
		RunId:              ent.RunId,
		Iteration:          ent.Iteration,
		TransformationName: ent.TransformationName,
		InputDefinition:    ent.InputDefinition,
		OutputDefinition:   ent.OutputDefinition,
		Status:             ent.Status,
		ErrorDetails:       ent.ErrorDetails,
		TokenCount:         ent.TokenCount,
		CreatedAt:          ent.CreatedAt,
		CreatedBy:          ent.CreatedBy,
	}
}

// MakeTransformationEntity builds the entity without an iteration, it is assigned on insert.
func MakeTransformationEntity(req *view.CreateIterationReq) *TransformationEntity {
	return &TransformationEntity{
		RunId:              req.RunId,
		TransformationName: req.TransformationName,
		InputDefinition:    req.InputDefinition,
		OutputDefinition:   req.OutputDefinition,
		Status:             string(view.StatusCreated),
		TokenCount:         req.TokenCount,
		CreatedAt:          time.Now(),
		CreatedBy:          req.CreatedBy,
	}
}
