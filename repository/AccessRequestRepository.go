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

type AccessRequestRepository interface {
	// CreateAccessRequest generates the next request code and inserts the record with it
	// in a single transaction. The id set on the entity by the caller is ignored.
	CreateAccessRequest(ent *entity.AccessRequestEntity) error
	GetAccessRequest(requestId string) (*entity.AccessRequestEntity, error)
	GetAccessRequests(projectCode string, status string) ([]entity.AccessRequestEntity, error)
	// ProcessAccessRequest moves a pending request to the given status and, if membership
	// is not nil, grants it in the same transaction. A request that is no longer pending
	// fails the whole transaction.
	ProcessAccessRequest(requestId string, status string, processedBy string, membership *entity.UserProjectEntity) error
}
