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
	"fmt"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	log "github.com/sirupsen/logrus"
)

type ZeroDayAdminService interface {
	CreateZeroDayAdmin() error
}

func NewZeroDayAdminService(userService UserService,
	userRepository repository.UserRepository,
	roleRepository repository.RoleRepository,
	systemInfoService SystemInfoService) ZeroDayAdminService {
	return &zeroDayAdminServiceImpl{
		userService:       userService,
		userRepository:    userRepository,
		roleRepository:    roleRepository,
		systemInfoService: systemInfoService,
	}
}

type zeroDayAdminServiceImpl struct {
	userService       UserService
	userRepository    repository.UserRepository
	roleRepository    repository.RoleRepository
	systemInfoService SystemInfoService
}

func (a zeroDayAdminServiceImpl) CreateZeroDayAdmin() error {
	email, password, err := a.systemInfoService.GetZeroDayAdminCreds()
	if err != nil {
		return fmt.Errorf("CreateZeroDayAdmin: credentials error: %w, admin will not be created", err)
	}

	user, err := a.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user != nil {
		_, err := a.userService.AuthenticateUser(email, password)
		if err != nil {
			passwordHash, err := createBcryptHashedPassword(password)
			if err != nil {
				return err
			}
			err = a.userRepository.UpdateUserPassword(user.Id, passwordHash)
			if err != nil {
				return err
			}
			log.Infof("CreateZeroDayAdmin: password is updated for system admin user")
		} else {
			log.Infof("CreateZeroDayAdmin: system admin user is already present")
		}
		return nil
	}

	adminRole, err := a.roleRepository.GetRoleByName(view.AdminRole)
	if err != nil {
		return err
	}
	if adminRole == nil {
		return fmt.Errorf("CreateZeroDayAdmin: role '%s' does not exist, admin will not be created", view.AdminRole)
	}
	_, err = a.userService.CreateUser(view.CreateUserReq{
		Email:    email,
		Password: password,
		RoleId:   adminRole.Id,
	})
	if err != nil {
		return err
	}
	log.Infof("CreateZeroDayAdmin: system admin user '%s' has been created", email)
	return nil
}
