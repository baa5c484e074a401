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
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type ProjectRepository interface {
	// CreateProject assigns the next PS code and inserts the project in a
	// single transaction. The code set on the entity by the caller is ignored.
	CreateProject(ent *entity.ProjectEntity) error
	GetProject(projectCode string) (*entity.ProjectEntity, error)
	GetProjects(req view.ProjectsListReq) ([]entity.ProjectEntity, error)
	UpdateProjectStatus(projectCode string, status string, updatedBy string) error
	DeleteProject(projectCode string, deletedBy string) error
}
