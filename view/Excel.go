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

package view

const SummarySheetName = "Summary"
const VersionsSheetName = "Job Versions"
const TransformationsSheetName = "Transformations"

const RunIDColumnName = "Run ID"
const VersionColumnName = "Version"
const ProjectCodeColumnName = "Project Code"
const ConnectionColumnName = "Connection"
const JobNameColumnName = "Job Name"
const StatusColumnName = "Status"
const SourceObjectColumnName = "Source Object"
const TokenCountColumnName = "Token Count"
const ChunkCountColumnName = "Chunk Count"
const ErrorDetailsColumnName = "Error Details"
const CreatedAtColumnName = "Created At"
const CreatedByColumnName = "Created By"
const IterationColumnName = "Iteration"
const TransformationNameColumnName = "Transformation"
