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
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userRepositoryMock struct {
	SaveUserFunc           func(ent *entity.UserEntity) (bool, error)
	GetUserByIdFunc        func(userId string) (*entity.UserEntity, error)
	GetUserByEmailFunc     func(email string) (*entity.UserEntity, error)
	GetUsersFunc           func(req view.UsersListReq) ([]entity.UserEntity, error)
	UserIdExistsFunc       func(userId string) (bool, error)
	AssignProjectFunc      func(ent *entity.UserProjectEntity) (bool, error)
	GetUserProjectsFunc    func(userId string) ([]entity.UserProjectEntity, error)
	UpdateUserPasswordFunc func(userId string, passwordHash []byte) error
}

func (m *userRepositoryMock) SaveUser(ent *entity.UserEntity) (bool, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(ent)
	}
	return true, nil
}

func (m *userRepositoryMock) GetUserById(userId string) (*entity.UserEntity, error) {
	if m.GetUserByIdFunc != nil {
		return m.GetUserByIdFunc(userId)
	}
	return nil, nil
}

func (m *userRepositoryMock) GetUserByEmail(email string) (*entity.UserEntity, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, nil
}

func (m *userRepositoryMock) GetUsers(req view.UsersListReq) ([]entity.UserEntity, error) {
	if m.GetUsersFunc != nil {
		return m.GetUsersFunc(req)
	}
	return nil, nil
}

func (m *userRepositoryMock) UpdateUserPassword(userId string, passwordHash []byte) error {
	if m.UpdateUserPasswordFunc != nil {
		return m.UpdateUserPasswordFunc(userId, passwordHash)
	}
	return nil
}

func (m *userRepositoryMock) UserIdExists(userId string) (bool, error) {
	if m.UserIdExistsFunc != nil {
		return m.UserIdExistsFunc(userId)
	}
	return false, nil
}

func (m *userRepositoryMock) AssignProject(ent *entity.UserProjectEntity) (bool, error) {
	if m.AssignProjectFunc != nil {
		return m.AssignProjectFunc(ent)
	}
	return true, nil
}

func (m *userRepositoryMock) GetUserProjects(userId string) ([]entity.UserProjectEntity, error) {
	if m.GetUserProjectsFunc != nil {
		return m.GetUserProjectsFunc(userId)
	}
	return nil, nil
}

func (m *userRepositoryMock) RemoveProject(userId string, projectCode string) error {
	return nil
}

type roleRepositoryMock struct {
	GetRoleFunc func(id string) (*entity.RoleEntity, error)
}

func (m *roleRepositoryMock) CreateRole(ent *entity.RoleEntity) (bool, error) { return true, nil }

func (m *roleRepositoryMock) GetRole(id string) (*entity.RoleEntity, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(id)
	}
	return nil, nil
}

func (m *roleRepositoryMock) GetRoleByName(role string) (*entity.RoleEntity, error) {
	return nil, nil
}

func (m *roleRepositoryMock) GetAllRoles() ([]entity.RoleEntity, error) { return nil, nil }

func (m *roleRepositoryMock) DeleteRole(id string) error { return nil }

// inMemoryUserRepository keeps created users so that AuthenticateUser can be
// exercised against the hash produced by CreateUser.
func inMemoryUserRepository(users map[string]*entity.UserEntity) *userRepositoryMock {
	return &userRepositoryMock{
		SaveUserFunc: func(ent *entity.UserEntity) (bool, error) {
			users[ent.Id] = ent
			return true, nil
		},
		GetUserByIdFunc: func(userId string) (*entity.UserEntity, error) {
			return users[userId], nil
		},
		GetUserByEmailFunc: func(email string) (*entity.UserEntity, error) {
			for _, ent := range users {
				if ent.Email == email {
					return ent, nil
				}
			}
			return nil, nil
		},
	}
}

func userTestService(userRepository *userRepositoryMock, roleRepository *roleRepositoryMock) *userServiceImpl {
	return &userServiceImpl{
		userRepository:    userRepository,
		roleRepository:    roleRepository,
		projectRepository: &projectRepositoryMock{},
	}
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	users := make(map[string]*entity.UserEntity)
	service := userTestService(inMemoryUserRepository(users), &roleRepositoryMock{})

	email := "jane.doe@example.com"
	user, err := service.CreateUser(view.CreateUserReq{Email: email, Password: "s3cretValue"})
	assert.NoError(t, err)
	assert.Equal(t, slug.Make(email), user.Id)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, email, user.Username) // username defaults to email
	assert.True(t, user.IsActive)

	stored := users[user.Id]
	assert.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("s3cretValue")))

	authenticated, err := service.AuthenticateUser(email, "s3cretValue")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, authenticated.Id)
}

func TestCreateUser_MissingRequiredParams(t *testing.T) {
	service := userTestService(&userRepositoryMock{}, &roleRepositoryMock{})

	_, err := service.CreateUser(view.CreateUserReq{})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.RequiredParamsMissing, customError.Code)
	params := customError.Params["params"].(string)
	assert.Contains(t, params, "email")
	assert.Contains(t, params, "password")
}

func TestCreateUser_PasswordTooLong(t *testing.T) {
	service := userTestService(&userRepositoryMock{}, &roleRepositoryMock{})

	_, err := service.CreateUser(view.CreateUserReq{
		Email:    "jane.doe@example.com",
		Password: strings.Repeat("a", 73),
	})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, http.StatusBadRequest, customError.Status)
	assert.Equal(t, exception.PasswordTooLong, customError.Code)
}

func TestCreateUser_EmailAlreadyTaken(t *testing.T) {
	userRepository := &userRepositoryMock{
		GetUserByEmailFunc: func(email string) (*entity.UserEntity, error) {
			return &entity.UserEntity{Id: "jane-doe-example-com", Email: email}, nil
		},
	}
	service := userTestService(userRepository, &roleRepositoryMock{})

	_, err := service.CreateUser(view.CreateUserReq{Email: "jane.doe@example.com", Password: "s3cretValue"})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, exception.EmailAlreadyTaken, customError.Code)
	assert.Equal(t, "jane.doe@example.com", customError.Params["email"])
}

func TestCreateUser_RoleNotFound(t *testing.T) {
	service := userTestService(&userRepositoryMock{}, &roleRepositoryMock{})

	_, err := service.CreateUser(view.CreateUserReq{
		Email:    "jane.doe@example.com",
		Password: "s3cretValue",
		RoleId:   "missing-role",
	})
	assert.Error(t, err)
	var customError *exception.CustomError
	assert.True(t, errors.As(err, &customError))
	assert.Equal(t, http.StatusNotFound, customError.Status)
	assert.Equal(t, exception.RoleNotFound, customError.Code)
	assert.Equal(t, "missing-role", customError.Params["role"])
}

func TestCreateUser_UserIdCollisionGetsSuffix(t *testing.T) {
	email := "jane.doe@example.com"
	var savedEntity *entity.UserEntity
	userRepository := &userRepositoryMock{
		GetUserByIdFunc: func(userId string) (*entity.UserEntity, error) {
			if userId == slug.Make(email) {
				return &entity.UserEntity{Id: userId}, nil
			}
			return nil, nil
		},
		SaveUserFunc: func(ent *entity.UserEntity) (bool, error) {
			savedEntity = ent
			return true, nil
		},
	}
	service := userTestService(userRepository, &roleRepositoryMock{})

	user, err := service.CreateUser(view.CreateUserReq{Email: email, Password: "s3cretValue"})
	assert.NoError(t, err)
	assert.Equal(t, slug.Make(email+"-1"), user.Id)
	assert.NotNil(t, savedEntity)
	assert.Equal(t, user.Id, savedEntity.Id)
}

func TestAuthenticateUser_InvalidCredentials(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("correctPassword"), bcrypt.MinCost)
	assert.NoError(t, err)
	knownUser := &entity.UserEntity{
		Id:           "jane-doe-example-com",
		Email:        "jane.doe@example.com",
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	tests := []struct {
		name     string
		user     *entity.UserEntity
		password string
	}{
		{"unknown user", nil, "correctPassword"},
		{"empty password", knownUser, ""},
		{"wrong password", knownUser, "wrongPassword"},
		{"no stored hash", &entity.UserEntity{Id: knownUser.Id, Email: knownUser.Email}, "correctPassword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepository := &userRepositoryMock{
				GetUserByEmailFunc: func(email string) (*entity.UserEntity, error) {
					return tt.user, nil
				},
			}
			service := userTestService(userRepository, &roleRepositoryMock{})

			_, err := service.AuthenticateUser("jane.doe@example.com", tt.password)
			assert.Error(t, err)
			var customError *exception.CustomError
			assert.True(t, errors.As(err, &customError))
			assert.Equal(t, http.StatusUnauthorized, customError.Status)
			assert.Equal(t, exception.InvalidCredentials, customError.Code)
		})
	}
}

func TestGetUsers_PagingClamped(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		page          int
		expectedLimit int
		expectedPage  int
	}{
		{"defaults applied", 0, 0, defaultUsersLimit, 0},
		{"negative page reset", 20, -3, 20, 0},
		{"limit capped", 100000, 2, maxUsersLimit, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var receivedReq view.UsersListReq
			userRepository := &userRepositoryMock{
				GetUsersFunc: func(req view.UsersListReq) ([]entity.UserEntity, error) {
					receivedReq = req
					return []entity.UserEntity{}, nil
				},
			}
			service := userTestService(userRepository, &roleRepositoryMock{})

			result, err := service.GetUsers(view.UsersListReq{Limit: tt.limit, Page: tt.page})
			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expectedLimit, receivedReq.Limit)
			assert.Equal(t, tt.expectedPage, receivedReq.Page)
		})
	}
}

func TestAssignProject(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		service := userTestService(&userRepositoryMock{}, &roleRepositoryMock{})

		_, err := service.AssignProject("ghost", "PS001", "admin")
		assert.Error(t, err)
		var customError *exception.CustomError
		assert.True(t, errors.As(err, &customError))
		assert.Equal(t, exception.UserNotFound, customError.Code)
		assert.Equal(t, "ghost", customError.Params["userId"])
	})

	t.Run("project not found", func(t *testing.T) {
		userRepository := &userRepositoryMock{
			UserIdExistsFunc: func(userId string) (bool, error) { return true, nil },
		}
		service := &userServiceImpl{
			userRepository: userRepository,
			roleRepository: &roleRepositoryMock{},
			projectRepository: &projectRepositoryMock{
				GetProjectFunc: func(projectCode string) (*entity.ProjectEntity, error) {
					return nil, nil
				},
			},
		}

		_, err := service.AssignProject("jane-doe-example-com", "PS404", "admin")
		assert.Error(t, err)
		var customError *exception.CustomError
		assert.True(t, errors.As(err, &customError))
		assert.Equal(t, exception.ProjectNotFound, customError.Code)
		assert.Equal(t, "PS404", customError.Params["projectCode"])
	})

	t.Run("already assigned", func(t *testing.T) {
		userRepository := &userRepositoryMock{
			UserIdExistsFunc:  func(userId string) (bool, error) { return true, nil },
			AssignProjectFunc: func(ent *entity.UserProjectEntity) (bool, error) { return false, nil },
		}
		service := userTestService(userRepository, &roleRepositoryMock{})

		_, err := service.AssignProject("jane-doe-example-com", "PS001", "admin")
		assert.Error(t, err)
		var customError *exception.CustomError
		assert.True(t, errors.As(err, &customError))
		assert.Equal(t, http.StatusConflict, customError.Status)
		assert.Equal(t, exception.UserProjectAlreadyAssigned, customError.Code)
	})

	t.Run("assigned", func(t *testing.T) {
		userRepository := &userRepositoryMock{
			UserIdExistsFunc: func(userId string) (bool, error) { return true, nil },
		}
		service := userTestService(userRepository, &roleRepositoryMock{})

		userProject, err := service.AssignProject("jane-doe-example-com", "PS001", "admin")
		assert.NoError(t, err)
		assert.NotEmpty(t, userProject.Id)
		assert.Equal(t, "jane-doe-example-com", userProject.UserId)
		assert.Equal(t, "PS001", userProject.ProjectCode)
		assert.Equal(t, "admin", userProject.CreatedBy)
	})
}
