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

type ConnectionRepository interface {
	// CreateConnection generates the next connection code and inserts the record with it
	// in a single transaction. The id set on the entity by the caller is ignored.
	CreateConnection(ent *entity.ConnectionEntity) error
	GetConnection(connectionId string) (*entity.ConnectionEntity, error)
	GetConnections(projectCode string) ([]entity.ConnectionEntity, error)
	UpdateConnection(ent *entity.ConnectionEntity) error
	UpdateConnectionTestStatus(connectionId string, status string) error
	DeleteConnection(connectionId string, deletedBy string) error
}
