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
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/metrics"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
)

type MetricsRepository interface {
	StartGetMetricsProcess() error
}

func NewMetricsRepository(cp db.ConnectionProvider) MetricsRepository {
	return &metricsRepositoryImpl{
		cp: cp,
	}
}

type metricsRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (m metricsRepositoryImpl) StartGetMetricsProcess() error {
	failedJobsCount, err := m.getJobCountByStatus(string(view.StatusFailed))
	if err != nil {
		return err
	}
	metrics.FailedJobCount.WithLabelValues().Set(float64(failedJobsCount.JobCount))

	runningJobsCount, err := m.getJobCountByStatus(string(view.StatusRunning))
	if err != nil {
		return err
	}
	metrics.RunningJobCount.WithLabelValues().Set(float64(runningJobsCount.JobCount))

	jobMaxAvgTimeMetrics, err := m.getJobTimeMetrics()
	if err != nil {
		return err
	}
	metrics.MaxJobTime.WithLabelValues().Set(float64(jobMaxAvgTimeMetrics.MaxJobTime))
	metrics.AvgJobTime.WithLabelValues().Set(float64(jobMaxAvgTimeMetrics.AvgJobTime))

	pendingRequestsCount, err := m.getAccessRequestCountByStatus(string(view.AccessRequestPending))
	if err != nil {
		return err
	}
	metrics.PendingAccessRequestCount.WithLabelValues().Set(float64(pendingRequestsCount.RequestCount))
	return nil
}

func (m metricsRepositoryImpl) getJobCountByStatus(status string) (*entity.JobByStatusCountEntity, error) {
	result := new(entity.JobByStatusCountEntity)
	query := `select count(*) as job_count from job_details where status = ? and started_at >= now() - interval '1 day'`
	_, err := m.cp.GetConnection().QueryOne(result, query, status)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m metricsRepositoryImpl) getJobTimeMetrics() (*entity.JobTimeMetricsEntity, error) {
	result := new(entity.JobTimeMetricsEntity)
	query := `select coalesce(EXTRACT(EPOCH FROM max(completed_at - started_at))::int, 0) as max_job_time, coalesce(EXTRACT(EPOCH FROM avg(completed_at - started_at))::int, 0) as avg_job_time from job_details where status = 'success' and completed_at >= now() - interval '1 day'`
	_, err := m.cp.GetConnection().QueryOne(result, query)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m metricsRepositoryImpl) getAccessRequestCountByStatus(status string) (*entity.AccessRequestCountEntity, error) {
	result := new(entity.AccessRequestCountEntity)
	query := `select count(request_id) as request_count from access_requests where status = ?`
	_, err := m.cp.GetConnection().QueryOne(result, query, status)
	if err != nil {
		return nil, err
	}
	return result, nil
}
