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
	"strings"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type UserEntity struct {
	tableName struct{} `pg:"users, alias:users"`

	Id           string    `pg:"user_id, pk, type:varchar"`
	Username     string    `pg:"username, type:varchar"`
	Email        string    `pg:"email, type:varchar"`
	PasswordHash []byte    `pg:"password_hash, type:bytea"`
	RoleId       string    `pg:"role_id, type:uuid"`
	IsActive     bool      `pg:"is_active, type:boolean, use_zero"`
	CreatedAt    time.Time `pg:"created_at, type:timestamp without time zone"`
}

func MakeUserView(ent *UserEntity) *view.User {
	return &view.User{
		Id:        ent.Id,
		Username:  ent.Username,
		Email:     ent.Email,
		RoleId:    ent.RoleId,
		IsActive:  ent.IsActive,
		CreatedAt: ent.CreatedAt,
	}
}

func MakeUserEntity(userId string, req *view.CreateUserReq, passwordHash []byte) *UserEntity {
	return &UserEntity{
		Id:           userId,
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		RoleId:       req.RoleId,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

type UserProjectEntity struct {
	tableName struct{} `pg:"user_projects, alias:user_projects"`

	Id          string    `pg:"id, pk, type:uuid"`
	UserId      string    `pg:"user_id, type:varchar"`
	ProjectCode string    `pg:"project_code, type:varchar"`
	CreatedAt   time.Time `pg:"created_at, type:timestamp without time zone"`
	CreatedBy   string    `pg:"created_by, type:varchar"`
}

func MakeUserProjectView(ent *UserProjectEntity) *view.UserProject {
	return &view.UserProject{
		Id:          ent.Id,
		UserId:      ent.UserId,
		ProjectCode: ent.ProjectCode,
		CreatedAt:   ent.CreatedAt,
		CreatedBy:   ent.CreatedBy,
	}
}
