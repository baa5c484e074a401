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

package service

import (
	goctx "context"
	"net/http"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/client"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	log "github.com/sirupsen/logrus"
)

type ConnectionService interface {
	CreateConnection(req view.CreateConnectionReq) (*view.Connection, error)
	GetConnection(connectionId string) (*view.Connection, error)
	GetConnections(projectCode string) (*view.Connections, error)
	UpdateConnection(connectionId string, req view.UpdateConnectionReq) (*view.Connection, error)
	DeleteConnection(connectionId string, deletedBy string) error
	TestConnection(connectionId string) error
}

func NewConnectionService(connectionRepository repository.ConnectionRepository,
	projectRepository repository.ProjectRepository,
	databricksClient client.DatabricksClient,
	testTimeout time.Duration) ConnectionService {
	return &connectionServiceImpl{
		connectionRepository: connectionRepository,
		projectRepository:    projectRepository,
		databricksClient:     databricksClient,
		testTimeout:          testTimeout,
	}
}

type connectionServiceImpl struct {
	connectionRepository repository.ConnectionRepository
	projectRepository    repository.ProjectRepository
	databricksClient     client.DatabricksClient
	testTimeout          time.Duration
}

func (c connectionServiceImpl) CreateConnection(req view.CreateConnectionReq) (*view.Connection, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	if req.DatabaseType != view.DatabaseTypeSqlServer && req.DatabaseType != view.DatabaseTypeDatabricks {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidParameterValueMsg,
			Params:  map[string]interface{}{"param": "databaseType", "value": req.DatabaseType},
		}
	}
	project, err := c.projectRepository.GetProject(req.ProjectCode)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": req.ProjectCode},
		}
	}

	ent := entity.MakeConnectionEntity(&req)
	err = c.connectionRepository.CreateConnection(ent)
	if err != nil {
		return nil, err
	}
	utils.SafeAsync(func() {
		c.runConnectionTest(ent.ConnectionId, ent.DatabaseType, ent.ConnectionKey)
	})
	return entity.MakeConnectionView(ent), nil
}

func (c connectionServiceImpl) GetConnection(connectionId string) (*view.Connection, error) {
	ent, err := c.connectionRepository.GetConnection(connectionId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ConnectionNotFound,
			Message: exception.ConnectionNotFoundMsg,
			Params:  map[string]interface{}{"connectionId": connectionId},
		}
	}
	return entity.MakeConnectionView(ent), nil
}

func (c connectionServiceImpl) GetConnections(projectCode string) (*view.Connections, error) {
	ents, err := c.connectionRepository.GetConnections(projectCode)
	if err != nil {
		return nil, err
	}
	connections := make([]view.Connection, 0, len(ents))
	for _, ent := range ents {
		connections = append(connections, *entity.MakeConnectionView(&ent))
	}
	return &view.Connections{Connections: connections}, nil
}

func (c connectionServiceImpl) UpdateConnection(connectionId string, req view.UpdateConnectionReq) (*view.Connection, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	ent, err := c.connectionRepository.GetConnection(connectionId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ConnectionNotFound,
			Message: exception.ConnectionNotFoundMsg,
			Params:  map[string]interface{}{"connectionId": connectionId},
		}
	}
	if req.ConnectionName != "" {
		ent.ConnectionName = req.ConnectionName
	}
	if req.ConnectionKey != nil {
		ent.ConnectionKey = req.ConnectionKey
		// the stored test result no longer applies to the new key
		ent.ConnectionTest = string(view.ConnectionTestPending)
	}
	now := time.Now()
	ent.UpdatedAt = &now
	ent.UpdatedBy = req.UpdatedBy
	err = c.connectionRepository.UpdateConnection(ent)
	if err != nil {
		return nil, err
	}
	if req.ConnectionKey != nil {
		utils.SafeAsync(func() {
			c.runConnectionTest(ent.ConnectionId, ent.DatabaseType, ent.ConnectionKey)
		})
	}
	return entity.MakeConnectionView(ent), nil
}

func (c connectionServiceImpl) DeleteConnection(connectionId string, deletedBy string) error {
	return c.connectionRepository.DeleteConnection(connectionId, deletedBy)
}

func (c connectionServiceImpl) TestConnection(connectionId string) error {
	ent, err := c.connectionRepository.GetConnection(connectionId)
	if err != nil {
		return err
	}
	if ent == nil {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ConnectionNotFound,
			Message: exception.ConnectionNotFoundMsg,
			Params:  map[string]interface{}{"connectionId": connectionId},
		}
	}
	utils.SafeAsync(func() {
		c.runConnectionTest(ent.ConnectionId, ent.DatabaseType, ent.ConnectionKey)
	})
	return nil
}

func (c connectionServiceImpl) runConnectionTest(connectionId string, databaseType string, connectionKey map[string]interface{}) {
	status := view.ConnectionTestSuccess
	if err := c.checkConnection(databaseType, connectionKey); err != nil {
		log.Warnf("Connection test failed for %s: %s", connectionId, err.Error())
		status = view.ConnectionTestFailed
	}
	err := c.connectionRepository.UpdateConnectionTestStatus(connectionId, string(status))
	if err != nil {
		log.Errorf("Failed to store connection test result for %s: %s", connectionId, err.Error())
	}
}

func (c connectionServiceImpl) checkConnection(databaseType string, connectionKey map[string]interface{}) error {
	switch databaseType {
	case view.DatabaseTypeDatabricks:
		workspaceUrl := entity.Metadata(connectionKey).GetStringValue("workspaceUrl")
		token := entity.Metadata(connectionKey).GetStringValue("token")
		if workspaceUrl == "" {
			return &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.EmptyParameter,
				Message: exception.EmptyParameterMsg,
				Params:  map[string]interface{}{"param": "workspaceUrl"},
			}
		}
		ctx, cancel := goctx.WithTimeout(goctx.Background(), c.testTimeout)
		defer cancel()
		return c.databricksClient.CheckWorkspaceAvailability(ctx, workspaceUrl, token)
	case view.DatabaseTypeSqlServer:
		// no TDS session is opened, presence of the required fields is the only check
		for _, field := range []string{"host", "database", "username", "password"} {
			if entity.Metadata(connectionKey).GetStringValue(field) == "" {
				return &exception.CustomError{
					Status:  http.StatusBadRequest,
					Code:    exception.EmptyParameter,
					Message: exception.EmptyParameterMsg,
					Params:  map[string]interface{}{"param": field},
				}
			}
		}
		return nil
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.InvalidParameterValue,
		Message: exception.InvalidParameterValueMsg,
		Params:  map[string]interface{}{"param": "databaseType", "value": databaseType},
	}
}
