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

type AccessRequest struct {
	RequestId   string     `json:"requestId"`
	UserId      string     `json:"userId"`
	ProjectCode string     `json:"projectCode"`
	RoleId      string     `json:"roleId"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status"`
	ProcessedBy string     `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AccessRequests struct {
	Requests []AccessRequest `json:"requests"`
}

type CreateAccessRequestReq struct {
	UserId      string `json:"userId" validate:"required"`
	ProjectCode string `json:"projectCode" validate:"required"`
	RoleId      string `json:"roleId" validate:"required"`
	Reason      string `json:"reason"`
}
