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
	"net/http"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/google/uuid"
)

type AccessRequestService interface {
	CreateAccessRequest(req view.CreateAccessRequestReq) (*view.AccessRequest, error)
	GetAccessRequest(requestId string) (*view.AccessRequest, error)
	GetAccessRequests(projectCode string, status string) (*view.AccessRequests, error)
	ApproveAccessRequest(requestId string, processedBy string) (*view.AccessRequest, error)
	RejectAccessRequest(requestId string, processedBy string) (*view.AccessRequest, error)
}

func NewAccessRequestService(accessRequestRepository repository.AccessRequestRepository,
	userRepository repository.UserRepository,
	roleRepository repository.RoleRepository,
	projectRepository repository.ProjectRepository) AccessRequestService {
	return &accessRequestServiceImpl{
		accessRequestRepository: accessRequestRepository,
		userRepository:          userRepository,
		roleRepository:          roleRepository,
		projectRepository:       projectRepository,
	}
}

type accessRequestServiceImpl struct {
	accessRequestRepository repository.AccessRequestRepository
	userRepository          repository.UserRepository
	roleRepository          repository.RoleRepository
	projectRepository       repository.ProjectRepository
}

func (a accessRequestServiceImpl) CreateAccessRequest(req view.CreateAccessRequestReq) (*view.AccessRequest, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	exists, err := a.userRepository.UserIdExists(req.UserId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": req.UserId},
		}
	}
	project, err := a.projectRepository.GetProject(req.ProjectCode)
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
	role, err := a.roleRepository.GetRole(req.RoleId)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"role": req.RoleId},
		}
	}

	ent := entity.MakeAccessRequestEntity(&req)
	err = a.accessRequestRepository.CreateAccessRequest(ent)
	if err != nil {
		return nil, err
	}
	return entity.MakeAccessRequestView(ent), nil
}

func (a accessRequestServiceImpl) GetAccessRequest(requestId string) (*view.AccessRequest, error) {
	ent, err := a.accessRequestRepository.GetAccessRequest(requestId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.AccessRequestNotFound,
			Message: exception.AccessRequestNotFoundMsg,
			Params:  map[string]interface{}{"requestId": requestId},
		}
	}
	return entity.MakeAccessRequestView(ent), nil
}

func (a accessRequestServiceImpl) GetAccessRequests(projectCode string, status string) (*view.AccessRequests, error) {
	if status != "" {
		if _, err := view.ParseAccessRequestStatus(status); err != nil {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.InvalidParameterValue,
				Message: exception.InvalidParameterValueMsg,
				Params:  map[string]interface{}{"param": "status", "value": status},
			}
		}
	}
	ents, err := a.accessRequestRepository.GetAccessRequests(projectCode, status)
	if err != nil {
		return nil, err
	}
	requests := make([]view.AccessRequest, 0, len(ents))
	for _, ent := range ents {
		requests = append(requests, *entity.MakeAccessRequestView(&ent))
	}
	return &view.AccessRequests{Requests: requests}, nil
}

// ApproveAccessRequest grants the requested membership in the same transaction
// that marks the request approved.
func (a accessRequestServiceImpl) ApproveAccessRequest(requestId string, processedBy string) (*view.AccessRequest, error) {
	request, err := a.accessRequestRepository.GetAccessRequest(requestId)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.AccessRequestNotFound,
			Message: exception.AccessRequestNotFoundMsg,
			Params:  map[string]interface{}{"requestId": requestId},
		}
	}

	membership := &entity.UserProjectEntity{
		Id:          uuid.New().String(),
		UserId:      request.UserId,
		ProjectCode: request.ProjectCode,
		CreatedAt:   time.Now(),
		CreatedBy:   processedBy,
	}
	err = a.accessRequestRepository.ProcessAccessRequest(requestId, string(view.AccessRequestApproved), processedBy, membership)
	if err != nil {
		return nil, err
	}
	return a.GetAccessRequest(requestId)
}

func (a accessRequestServiceImpl) RejectAccessRequest(requestId string, processedBy string) (*view.AccessRequest, error) {
	request, err := a.accessRequestRepository.GetAccessRequest(requestId)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.AccessRequestNotFound,
			Message: exception.AccessRequestNotFoundMsg,
			Params:  map[string]interface{}{"requestId": requestId},
		}
	}
	err = a.accessRequestRepository.ProcessAccessRequest(requestId, string(view.AccessRequestRejected), processedBy, nil)
	if err != nil {
		return nil, err
	}
	return a.GetAccessRequest(requestId)
}
