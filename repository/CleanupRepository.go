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
	"context"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type CleanupRepository interface {
	RemoveDeletedProjects(deleteBefore time.Time) (purgedRuns []string, deletedRows int, err error)
	RemoveDeletedConnections(deleteBefore time.Time) (deletedRows int, err error)
}

func NewCleanupRepository(cp db.ConnectionProvider) CleanupRepository {
	return &cleanupRepositoryImpl{
		cp: cp,
	}
}

type cleanupRepositoryImpl struct {
	cp db.ConnectionProvider
}

// runs per delete statement for the high cardinality dependent tables
const cleanupBatchSize = 500

// RemoveDeletedProjects purges projects soft deleted before the retention
// boundary together with everything that hangs off them. Dependents go first,
// the project row last, all in one transaction. The ids of the purged runs are
// returned so the caller can drop their exported archives as well.
func (c cleanupRepositoryImpl) RemoveDeletedProjects(deleteBefore time.Time) ([]string, int, error) {
	ctx := context.Background()
	purgedRunIds := make([]string, 0)
	var deletedRows int
	err := c.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		purgedProjects := `select project_code from project where is_deleted = true and coalesce(updated_at, created_at) <= ?`
		purgedRuns := `select run_id from job_details where project_code in (` + purgedProjects + `)`

		_, err := tx.Query(&purgedRunIds, purgedRuns, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to list runs of purged projects")
		}
		for start := 0; start < len(purgedRunIds); start += cleanupBatchSize {
			chunk := purgedRunIds[start:min(start+cleanupBatchSize, len(purgedRunIds))]
			_, err = tx.Exec(`delete from transformation_level_details where run_id in (?)`, pg.In(chunk))
			if err != nil {
				return errors.Wrap(err, "failed to delete transformation iterations of purged projects")
			}
			_, err = tx.Exec(`delete from dbt_models where run_id in (?)`, pg.In(chunk))
			if err != nil {
				return errors.Wrap(err, "failed to delete dbt artifacts of purged projects")
			}
		}
		_, err = tx.Exec(`delete from job_details where project_code in (`+purgedProjects+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete runs of purged projects")
		}
		_, err = tx.Exec(`delete from schema_details where project_code in (`+purgedProjects+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete schema details of purged projects")
		}
		_, err = tx.Exec(`delete from access_requests where project_code in (`+purgedProjects+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete access requests of purged projects")
		}
		_, err = tx.Exec(`delete from user_projects where project_code in (`+purgedProjects+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete project memberships of purged projects")
		}
		_, err = tx.Exec(`delete from connection_details where project_code in (`+purgedProjects+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete connections of purged projects")
		}

		result, err := tx.Exec(`delete from project where is_deleted = true and coalesce(updated_at, created_at) <= ?`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete projects from table project")
		}
		deletedRows = result.RowsAffected()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// Do not run vacuum in transaction
	_, err = c.cp.GetConnection().Exec("vacuum project")
	if err != nil {
		return purgedRunIds, deletedRows, errors.Wrap(err, "failed to run vacuum for table project")
	}
	return purgedRunIds, deletedRows, nil
}

// RemoveDeletedConnections purges individually soft deleted connections. Runs
// that used a purged connection keep their history, only the link is cleared
// so the credential bearing row can go away.
func (c cleanupRepositoryImpl) RemoveDeletedConnections(deleteBefore time.Time) (int, error) {
	ctx := context.Background()
	var deletedRows int
	err := c.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		purgedConnections := `select connection_id from connection_details where is_deleted = true and coalesce(updated_at, created_at) <= ?`

		_, err := tx.Exec(`update job_details set connection_id = null where connection_id in (`+purgedConnections+`)`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to unlink runs from purged connections")
		}
		result, err := tx.Exec(`delete from connection_details where is_deleted = true and coalesce(updated_at, created_at) <= ?`, deleteBefore)
		if err != nil {
			return errors.Wrap(err, "failed to delete connections from table connection_details")
		}
		deletedRows = result.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	_, err = c.cp.GetConnection().Exec("vacuum connection_details")
	if err != nil {
		return deletedRows, errors.Wrap(err, "failed to run vacuum for table connection_details")
	}
	return deletedRows, nil
}
