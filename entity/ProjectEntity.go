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

type ProjectEntity struct {
	tableName struct{} `pg:"project, alias:project"`

	ProjectCode string     `pg:"project_code, pk, type:varchar"`
	Name        string     `pg:"project, type:varchar, use_zero"`
	Description string     `pg:"description, type:varchar"`
	Status      string     `pg:"status, type:varchar, use_zero"`
	IsDeleted   bool       `pg:"is_deleted, type:boolean, use_zero"`
	CreatedAt   time.Time  `pg:"created_at, type:timestamp without time zone"`
	CreatedBy   string     `pg:"created_by, type:varchar"`
	UpdatedAt   *time.Time `pg:"updated_at, type:timestamp without time zone"`
	UpdatedBy   string     `pg:"updated_by, type:varchar"`
}

func MakeProjectView(ent *ProjectEntity) *view.Project {
	return &view.Project{
		ProjectCode: ent.ProjectCode,
		Name:        ent.Name,
		Description: ent.Description,
		Status:      ent.Status,
		CreatedAt:   ent.CreatedAt,
		CreatedBy:   ent.CreatedBy,
		UpdatedAt:   ent.UpdatedAt,
		UpdatedBy:   ent.UpdatedBy,
	}
}

func MakeProjectEntity(req *view.CreateProjectReq) *ProjectEntity {
	return &ProjectEntity{
		Name:        req.Name,
		Description: req.Description,
		Status:      view.ProjectStatusActive,
		CreatedAt:   time.Now(),
		CreatedBy:   req.CreatedBy,
	}
}
