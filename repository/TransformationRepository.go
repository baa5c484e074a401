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

package repository

import (
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
)

type TransformationRepository interface {
	// CreateIteration computes the next iteration for the (run, transformation)
	// pair and inserts the record with it in a single transaction. The iteration
	// set on the entity by the caller is ignored. A concurrent insert for the
	// same pair surfaces as an iteration conflict.
	CreateIteration(ent *entity.TransformationEntity) error
	GetNextIteration(runId string, transformationName string) (int, error)
	GetLatestIteration(runId string, transformationName string) (int, error)
	GetIteration(runId string, transformationName string, iteration int) (*entity.TransformationEntity, error)
	GetIterations(runId string) ([]entity.TransformationEntity, error)
	GetIterationsByName(runId string, transformationName string) ([]entity.TransformationEntity, error)
	GetTransformationNames(runId string) ([]string, error)
	UpdateIterationStatus(runId string, transformationName string, iteration int, status string, errorDetails string) error
}
