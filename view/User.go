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

type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleId    string    `json:"roleId,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type Users struct {
	Users []User `json:"users"`
}

type CreateUserReq struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	RoleId   string `json:"roleId"`
}

type UsersListReq struct {
	Filter string `json:"filter"`
	Limit  int    `json:"limit"`
	Page   int    `json:"page"`
}

type UserProject struct {
	Id          string    `json:"id"`
	UserId      string    `json:"userId"`
	ProjectCode string    `json:"projectCode"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

type UserProjects struct {
	Projects []UserProject `json:"projects"`
}
