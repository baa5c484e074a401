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
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type RoleEntity struct {
	tableName struct{} `pg:"roles, alias:roles"`

	Id          string `pg:"id, pk, type:uuid"`
	Role        string `pg:"role, type:varchar, use_zero"`
	Description string `pg:"description, type:varchar"`
}

func MakeRoleView(ent *RoleEntity) *view.Role {
	return &view.Role{
		Id:          ent.Id,
		Role:        ent.Role,
		Description: ent.Description,
	}
}

func MakeRoleEntity(id string, req *view.CreateRoleReq) *RoleEntity {
	return &RoleEntity{
		Id:          id,
		Role:        req.Role,
		Description: req.Description,
	}
}
