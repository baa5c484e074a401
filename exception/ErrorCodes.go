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

package exception

// Request parameter errors
const (
	RequiredParamsMissing    = "4"
	RequiredParamsMissingMsg = "required parameters are missing: $params"

	IncorrectParamType    = "5"
	IncorrectParamTypeMsg = "$param parameter should be $type"

	InvalidParameterValue    = "6"
	InvalidParameterValueMsg = "value '$value' is not allowed for parameter $param"

	EmptyParameter    = "7"
	EmptyParameterMsg = "parameter $param should not be empty"
)

// Sequence assignment errors
const (
	VersionAlreadyExists    = "101"
	VersionAlreadyExistsMsg = "version $version already exists for run $runId"

	IterationAlreadyExists    = "102"
	IterationAlreadyExistsMsg = "iteration $iteration already exists for run $runId and transformation $transformationName"

	EntityCodeAlreadyExists    = "103"
	EntityCodeAlreadyExistsMsg = "generated code $code is already taken"

	SchemaDetailsAlreadyExist    = "104"
	SchemaDetailsAlreadyExistMsg = "schema details for run $runId already exist"
)

// Not found errors
const (
	ProjectNotFound    = "201"
	ProjectNotFoundMsg = "project $projectCode not found"

	ConnectionNotFound    = "202"
	ConnectionNotFoundMsg = "connection $connectionId not found"

	RunNotFound    = "203"
	RunNotFoundMsg = "run $runId not found"

	JobVersionNotFound    = "204"
	JobVersionNotFoundMsg = "version $version not found for run $runId"

	IterationNotFound    = "205"
	IterationNotFoundMsg = "iteration $iteration not found for run $runId and transformation $transformationName"

	SchemaDetailsNotFound    = "206"
	SchemaDetailsNotFoundMsg = "schema details for run $runId not found"

	LlmModelNotFound    = "207"
	LlmModelNotFoundMsg = "LLM model $modelId not found"

	RoleNotFound    = "208"
	RoleNotFoundMsg = "role $role not found"

	UserNotFound    = "209"
	UserNotFoundMsg = "user $userId not found"

	AccessRequestNotFound    = "210"
	AccessRequestNotFoundMsg = "access request $requestId not found"

	DbtArtifactsNotFound    = "211"
	DbtArtifactsNotFoundMsg = "dbt artifacts for run $runId not found"
)

// Conflict and state errors
const (
	RoleAlreadyExists    = "301"
	RoleAlreadyExistsMsg = "role $role already exists"

	EmailAlreadyTaken    = "302"
	EmailAlreadyTakenMsg = "email $email is already taken"

	PasswordTooLong    = "303"
	PasswordTooLongMsg = "password exceeds the maximum length of 72 bytes"

	InvalidCredentials    = "304"
	InvalidCredentialsMsg = "invalid credentials"

	UserProjectAlreadyAssigned    = "305"
	UserProjectAlreadyAssignedMsg = "user $userId is already assigned to project $projectCode"

	AccessRequestAlreadyProcessed    = "306"
	AccessRequestAlreadyProcessedMsg = "access request $requestId was already processed"

	RoleNotEditable    = "307"
	RoleNotEditableMsg = "role $role is not editable"
)
