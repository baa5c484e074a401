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
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/entity"
	"github.com/go-pg/pg/v10"
)

func NewDbtModelRepositoryPG(cp db.ConnectionProvider) (DbtModelRepository, error) {
	return &dbtModelRepositoryImpl{cp: cp}, nil
}

type dbtModelRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (d dbtModelRepositoryImpl) SaveDbtArtifacts(ent *entity.DbtModelEntity) error {
	_, err := d.cp.GetConnection().Model(ent).Insert()
	return err
}

func (d dbtModelRepositoryImpl) GetDbtArtifacts(runId string) ([]entity.DbtModelEntity, error) {
	var result []entity.DbtModelEntity
	err := d.cp.GetConnection().Model(&result).
		Where("run_id = ?", runId).
		Order("created_at ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (d dbtModelRepositoryImpl) GetLatestDbtArtifacts(runId string) (*entity.DbtModelEntity, error) {
	result := new(entity.DbtModelEntity)
	err := d.cp.GetConnection().Model(result).
		Where("run_id = ?", runId).
		Order("created_at DESC").
		Limit(1).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
