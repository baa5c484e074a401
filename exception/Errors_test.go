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

import (
	"net/http"
	"testing"
)

func TestCustomError_ParamSubstitution(t *testing.T) {
	err := CustomError{
		Status:  http.StatusConflict,
		Code:    VersionAlreadyExists,
		Message: VersionAlreadyExistsMsg,
		Params:  map[string]interface{}{"runId": "R1", "version": 2},
	}
	expected := "version 2 already exists for run R1"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestCustomError_DebugAppended(t *testing.T) {
	err := CustomError{
		Status:  http.StatusBadRequest,
		Code:    RequiredParamsMissing,
		Message: RequiredParamsMissingMsg,
		Params:  map[string]interface{}{"params": "runId"},
		Debug:   "validation tag failed",
	}
	expected := "required parameters are missing: runId | validation tag failed"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestCustomError_MessageWithoutParams(t *testing.T) {
	err := CustomError{
		Status:  http.StatusInternalServerError,
		Message: "unexpected failure",
	}
	if err.Error() != "unexpected failure" {
		t.Errorf("got %q", err.Error())
	}
}
