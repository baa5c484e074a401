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

type LlmModelEntity struct {
	tableName struct{} `pg:"llm_models, alias:llm_models"`

	ModelId     string                 `pg:"model_id, pk, type:varchar"`
	ModelName   string                 `pg:"model_name, type:varchar, use_zero"`
	Provider    string                 `pg:"provider, type:varchar"`
	EndpointUrl string                 `pg:"endpoint_url, type:varchar"`
	ApiKey      map[string]interface{} `pg:"api_key, type:jsonb"`
	MaxTokens   int                    `pg:"max_tokens, type:integer, use_zero"`
	IsActive    bool                   `pg:"is_active, type:boolean, use_zero"`
	CreatedAt   time.Time              `pg:"created_at, type:timestamp without time zone"`
	CreatedBy   string                 `pg:"created_by, type:varchar"`
	UpdatedAt   *time.Time             `pg:"updated_at, type:timestamp without time zone"`
	UpdatedBy   string                 `pg:"updated_by, type:varchar"`
}

func MakeLlmModelView(ent *LlmModelEntity) *view.LlmModel {
	return &view.LlmModel{
		ModelId:     ent.ModelId,
		ModelName:   ent.ModelName,
		Provider:    ent.Provider,
		EndpointUrl: ent.EndpointUrl,
		ApiKey:      ent.ApiKey,
		MaxTokens:   ent.MaxTokens,
		IsActive:    ent.IsActive,
		CreatedAt:   ent.CreatedAt,
		CreatedBy:   ent.CreatedBy,
		UpdatedAt:   ent.UpdatedAt,
		UpdatedBy:   ent.UpdatedBy,
	}
}

func MakeLlmModelEntity(req *view.CreateLlmModelReq) *LlmModelEntity {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}
	return &LlmModelEntity{
		ModelName:   req.ModelName,
		Provider:    req.Provider,
		EndpointUrl: req.EndpointUrl,
		ApiKey:      req.ApiKey,
		MaxTokens:   maxTokens,
		IsActive:    true,
		CreatedAt:   time.Now(),
		CreatedBy:   req.CreatedBy,
	}
}
