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
	"strconv"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(req view.CreateUserReq) (*view.User, error)
	GetUser(userId string) (*view.User, error)
	GetUserByEmail(email string) (*view.User, error)
	GetUsers(req view.UsersListReq) (*view.Users, error)
	AuthenticateUser(email string, password string) (*view.User, error)
	AssignProject(userId string, projectCode string, createdBy string) (*view.UserProject, error)
	GetUserProjects(userId string) (*view.UserProjects, error)
	RemoveProject(userId string, projectCode string) error
}

const (
	defaultUsersLimit = 100
	maxUsersLimit     = 500
)

func NewUserService(userRepository repository.UserRepository,
	roleRepository repository.RoleRepository,
	projectRepository repository.ProjectRepository) UserService {
	return &userServiceImpl{
		userRepository:    userRepository,
		roleRepository:    roleRepository,
		projectRepository: projectRepository,
	}
}

type userServiceImpl struct {
	userRepository    repository.UserRepository
	roleRepository    repository.RoleRepository
	projectRepository repository.ProjectRepository
}

func (u userServiceImpl) CreateUser(req view.CreateUserReq) (*view.User, error) {
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	//bcrypt max allowed password len
	if len([]byte(req.Password)) > 72 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.PasswordTooLong,
			Message: exception.PasswordTooLongMsg,
		}
	}
	err := u.validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if req.RoleId != "" {
		role, err := u.roleRepository.GetRole(req.RoleId)
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
	}

	userId, err := u.createUniqueUserId(req.Email)
	if err != nil {
		return nil, err
	}
	if req.Username == "" {
		req.Username = req.Email
	}
	passwordHash, err := createBcryptHashedPassword(req.Password)
	if err != nil {
		return nil, err
	}

	userEntity := entity.MakeUserEntity(userId, &req, passwordHash)
	saved, err := u.userRepository.SaveUser(userEntity)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create user",
		}
	}
	return entity.MakeUserView(userEntity), nil
}

func (u userServiceImpl) GetUser(userId string) (*view.User, error) {
	ent, err := u.userRepository.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": userId},
		}
	}
	return entity.MakeUserView(ent), nil
}

func (u userServiceImpl) GetUserByEmail(email string) (*view.User, error) {
	ent, err := u.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": email},
		}
	}
	return entity.MakeUserView(ent), nil
}

func (u userServiceImpl) GetUsers(req view.UsersListReq) (*view.Users, error) {
	req.Limit, req.Page = utils.ClampPaging(req.Limit, req.Page, defaultUsersLimit, maxUsersLimit)
	ents, err := u.userRepository.GetUsers(req)
	if err != nil {
		return nil, err
	}
	users := make([]view.User, 0, len(ents))
	for _, ent := range ents {
		users = append(users, *entity.MakeUserView(&ent))
	}
	return &view.Users{Users: users}, nil
}

func (u userServiceImpl) AuthenticateUser(email string, password string) (*view.User, error) {
	userEntity, err := u.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" || userEntity == nil || len(userEntity.PasswordHash) == 0 {
		log.Debugf("Local authentication failed for %v", email)
		return nil, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.InvalidCredentials,
			Message: exception.InvalidCredentialsMsg,
		}
	}
	err = bcrypt.CompareHashAndPassword(userEntity.PasswordHash, []byte(password))
	if err != nil {
		log.Debugf("Local authentication failed for %v", email)
		return nil, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.InvalidCredentials,
			Message: exception.InvalidCredentialsMsg,
		}
	}
	return entity.MakeUserView(userEntity), nil
}

func (u userServiceImpl) AssignProject(userId string, projectCode string, createdBy string) (*view.UserProject, error) {
	exists, err := u.userRepository.UserIdExists(userId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": userId},
		}
	}
	project, err := u.projectRepository.GetProject(projectCode)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.ProjectNotFound,
			Message: exception.ProjectNotFoundMsg,
			Params:  map[string]interface{}{"projectCode": projectCode},
		}
	}

	ent := &entity.UserProjectEntity{
		Id:          uuid.New().String(),
		UserId:      userId,
		ProjectCode: projectCode,
		CreatedAt:   time.Now(),
		CreatedBy:   createdBy,
	}
	added, err := u.userRepository.AssignProject(ent)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, &exception.CustomError{
			Status:  http.StatusConflict,
			Code:    exception.UserProjectAlreadyAssigned,
			Message: exception.UserProjectAlreadyAssignedMsg,
			Params:  map[string]interface{}{"userId": userId, "projectCode": projectCode},
		}
	}
	return entity.MakeUserProjectView(ent), nil
}

func (u userServiceImpl) GetUserProjects(userId string) (*view.UserProjects, error) {
	ents, err := u.userRepository.GetUserProjects(userId)
	if err != nil {
		return nil, err
	}
	projects := make([]view.UserProject, 0, len(ents))
	for _, ent := range ents {
		projects = append(projects, *entity.MakeUserProjectView(&ent))
	}
	return &view.UserProjects{Projects: projects}, nil
}

func (u userServiceImpl) RemoveProject(userId string, projectCode string) error {
	return u.userRepository.RemoveProject(userId, projectCode)
}

func (u userServiceImpl) validateEmail(email string) error {
	if email == "" {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.EmptyParameter,
			Message: exception.EmptyParameterMsg,
			Params:  map[string]interface{}{"param": "email"},
		}
	}
	existingUser, err := u.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.EmailAlreadyTaken,
			Message: exception.EmailAlreadyTakenMsg,
			Params:  map[string]interface{}{"email": email},
		}
	}
	return nil
}

func (u userServiceImpl) createUniqueUserId(email string) (string, error) {
	userId := slug.Make(email)
	existingUser, err := u.userRepository.GetUserById(userId)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		i := 1
		for existingUser != nil {
			userId = slug.Make(email + "-" + strconv.Itoa(i))
			existingUser, err = u.userRepository.GetUserById(userId)
			if err != nil {
				return "", err
			}
			i++
		}
	}
	return userId, nil
}

func createBcryptHashedPassword(password string) ([]byte, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return hashedPassword, err
}
