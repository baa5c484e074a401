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

type AccessRequestEntity struct {
	tableName struct{} `pg:"access_requests, alias:access_requests"`

	RequestId   string     `pg:"request_id, pk, type:varchar"`
	UserId      string     `pg:"user_id, type:varchar"`
	ProjectCode string     `pg:"project_code, type:varchar"`
	RoleId      string     `pg:"role_id, type:uuid"`
	Reason      string     `pg:"reason, type:varchar"`
	Status      string     `pg:"status, type:varchar, use_zero"`
	ProcessedBy string     `pg:"processed_by, type:varchar"`
	ProcessedAt *time.Time `pg:"processed_at, type:timestamp without time zone"`
	CreatedAt   time.Time  `pg:"created_at, type:timestamp without time zone"`
}

func MakeAccessRequestView(ent *AccessRequestEntity) *view.AccessRequest {
	return &view.AccessRequest{
		RequestId:   ent.RequestId,
		UserId:      ent.UserId,
		ProjectCode: ent.ProjectCode,
		RoleId:      ent.RoleId,
		Reason:      ent.Reason,
		Status:      ent.Status,
		ProcessedBy: ent.ProcessedBy,
		ProcessedAt: ent.ProcessedAt,
		CreatedAt:   ent.CreatedAt,
	}
}

func MakeAccessRequestEntity(req *view.CreateAccessRequestReq) *AccessRequestEntity {
	return &AccessRequestEntity{
		UserId:      req.UserId,
		ProjectCode: req.ProjectCode,
		RoleId:      req.RoleId,
		Reason:      req.Reason,
		Status:      string(view.AccessRequestPending),
		CreatedAt:   time.Now(),
	}
}
