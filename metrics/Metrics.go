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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "migrationhub_http_requests_total",
		Help: "Number of get requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "migrationhub_http_request_duration_seconds_historgram",
		Buckets: []float64{
			0.1, // 100 ms
			0.2,
			0.25,
			0.5,
			1,
			1.5,
			3,
			5,
			10,
		},
	},
	[]string{"path", "code", "method"},
)

var AssignedVersionsCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "migrationhub_assigned_versions_total",
		Help: "Number of job versions assigned on insert",
	},
	[]string{},
)

var AssignedIterationsCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "migrationhub_assigned_iterations_total",
		Help: "Number of transformation iterations assigned on insert",
	},
	[]string{},
)

var SequenceConflictRetriesCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "migrationhub_sequence_conflict_retries_total",
		Help: "Number of insert retries caused by concurrent counter assignment",
	},
	[]string{"scope"},
)

var RunningJobCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "migrationhub_running_job_count",
		Help: "Job version count with status = 'running'",
	},
	[]string{},
)

var FailedJobCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "migrationhub_failed_job_count",
		Help: "Job version count with status = 'failed'",
	},
	[]string{},
)

var PendingAccessRequestCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "migrationhub_pending_access_request_count",
		Help: "Access request count with status = 'pending'",
	},
	[]string{},
)

var MaxJobTime = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "migrationhub_max_job_time",
		Help: "Max job time",
	},
	[]string{},
)

var AvgJobTime = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "migrationhub_avg_job_time",
		Help: "Avg job time",
	},
	[]string{},
)

func RegisterAllPrometheusApplicationMetrics() {
	prometheus.Register(TotalRequests)
	prometheus.Register(HttpDuration)
	prometheus.Register(AssignedVersionsCount)
	prometheus.Register(AssignedIterationsCount)
	prometheus.Register(SequenceConflictRetriesCount)
	prometheus.Register(RunningJobCount)
	prometheus.Register(FailedJobCount)
	prometheus.Register(PendingAccessRequestCount)
	prometheus.Register(MaxJobTime)
	prometheus.Register(AvgJobTime)
}
