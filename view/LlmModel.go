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

type LlmModel struct {
	ModelId     string                 `json:"modelId"`
	ModelName   string                 `json:"modelName"`
	Provider    string                 `json:"provider,omitempty"`
	EndpointUrl string                 `json:"endpointUrl,omitempty"`
	ApiKey      map[string]interface{} `json:"apiKey,omitempty"`
	MaxTokens   int                    `json:"maxTokens"`
	IsActive    bool                   `json:"isActive"`
	CreatedAt   time.Time              `json:"createdAt"`
	CreatedBy   string                 `json:"createdBy"`
	UpdatedAt   *time.Time             `json:"updatedAt,omitempty"`
	UpdatedBy   string                 `json:"updatedBy,omitempty"`
}

type LlmModels struct {
	Models []LlmModel `json:"models"`
}

type CreateLlmModelReq struct {
	ModelName   string                 `json:"modelName" validate:"required"`
	Provider    string                 `json:"provider"`
	EndpointUrl string                 `json:"endpointUrl"`
	ApiKey      map[string]interface{} `json:"apiKey"`
	MaxTokens   int                    `json:"maxTokens"`
	CreatedBy   string                 `json:"createdBy" validate:"required"`
}

type UpdateLlmModelReq struct {
	ModelName   string                 `json:"modelName"`
	Provider    string                 `json:"provider"`
	EndpointUrl string                 `json:"endpointUrl"`
	ApiKey      map[string]interface{} `json:"apiKey"`
	MaxTokens   int                    `json:"maxTokens"`
	UpdatedBy   string                 `json:"updatedBy" validate:"required"`
}
