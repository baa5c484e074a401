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

package service

import (
	"net/http"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type LlmModelService interface {
	CreateLlmModel(req view.CreateLlmModelReq) (*view.LlmModel, error)
	GetLlmModel(modelId string) (*view.LlmModel, error)
	GetLlmModels(onlyActive bool) (*view.LlmModels, error)
	UpdateLlmModel(modelId string, req view.UpdateLlmModelReq) (*view.LlmModel, error)
	DeactivateLlmModel(modelId string, updatedBy string) error
}

func NewLlmModelService(llmModelRepository repository.LlmModelRepository) LlmModelService {
	return &llmModelServiceImpl{
		llmModelRepository: llmModelRepository,
	}
}

type llmModelServiceImpl struct {
	llmModelRepository repository.LlmModelRepository
}

func (l llmModelServiceImpl) CreateLlmModel(req view.CreateLlmModelReq) (*view.LlmModel, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	ent := entity.MakeLlmModelEntity(&req)
	err := l.llmModelRepository.CreateLlmModel(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeLlmModelView(ent), nil
}

func (l llmModelServiceImpl) GetLlmModel(modelId string) (*view.LlmModel, error) {
	ent, err := l.llmModelRepository.GetLlmModel(modelId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.LlmModelNotFound,
			Message: exception.LlmModelNotFoundMsg,
			Params:  map[string]interface{}{"modelId": modelId},
		}
	}
	return entity.MakeLlmModelView(ent), nil
}

func (l llmModelServiceImpl) GetLlmModels(onlyActive bool) (*view.LlmModels, error) {
	ents, err := l.llmModelRepository.GetLlmModels(onlyActive)
	if err != nil {
		return nil, err
	}
	models := make([]view.LlmModel, 0, len(ents))
	for _, ent := range ents {
		models = append(models, *entity.MakeLlmModelView(&ent))
	}
	return &view.LlmModels{Models: models}, nil
}

func (l llmModelServiceImpl) UpdateLlmModel(modelId string, req view.UpdateLlmModelReq) (*view.LlmModel, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	ent, err := l.llmModelRepository.GetLlmModel(modelId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.LlmModelNotFound,
			Message: exception.LlmModelNotFoundMsg,
			Params:  map[string]interface{}{"modelId": modelId},
		}
	}
	if req.ModelName != "" {
		ent.ModelName = req.ModelName
	}
	if req.Provider != "" {
		ent.Provider = req.Provider
	}
	if req.EndpointUrl != "" {
		ent.EndpointUrl = req.EndpointUrl
	}
	if req.ApiKey != nil {
		ent.ApiKey = req.ApiKey
	}
	if req.MaxTokens > 0 {
		ent.MaxTokens = req.MaxTokens
	}
	now := time.Now()
	ent.UpdatedAt = &now
	ent.UpdatedBy = req.UpdatedBy
	err = l.llmModelRepository.UpdateLlmModel(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeLlmModelView(ent), nil
}

func (l llmModelServiceImpl) DeactivateLlmModel(modelId string, updatedBy string) error {
	return l.llmModelRepository.DeactivateLlmModel(modelId, updatedBy)
}
