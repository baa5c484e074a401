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

const AdminRole = "admin"
const MaintainerRole = "maintainer"
const ViewerRole = "viewer"

type Role struct {
	Id          string `json:"id"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
}

type Roles struct {
	Roles []Role `json:"roles"`
}

type CreateRoleReq struct {
	Role        string `json:"role" validate:"required"`
	Description string `json:"description"`
}
