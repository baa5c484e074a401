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

package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
)

type validatedRequest struct {
	RunId     string `json:"runId" validate:"required"`
	Note      string `json:"note"`
	CreatedBy string `json:"createdBy" validate:"required"`
}

type nestedValidatedRequest struct {
	Name    string           `json:"name" validate:"required"`
	Options validatedOptions `json:"options"`
}

type validatedOptions struct {
	Target string `json:"target" validate:"required"`
}

func TestValidateObject_AllFieldsPresent(t *testing.T) {
	err := ValidateObject(validatedRequest{RunId: "R1", CreatedBy: "worker"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateObject_MissingFieldsReportedByJsonName(t *testing.T) {
	err := ValidateObject(validatedRequest{Note: "no ids"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if customError.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", customError.Status)
	}
	if customError.Code != exception.RequiredParamsMissing {
		t.Errorf("expected code %v, got %v", exception.RequiredParamsMissing, customError.Code)
	}
	params, ok := customError.Params["params"].(string)
	if !ok {
		t.Fatal("expected 'params' in error Params")
	}
	if params != "runId, createdBy" {
		t.Errorf("expected 'runId, createdBy', got %q", params)
	}
}

func TestValidateObject_NestedFieldPath(t *testing.T) {
	err := ValidateObject(nestedValidatedRequest{Name: "x"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var customError *exception.CustomError
	if !errors.As(err, &customError) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	params, ok := customError.Params["params"].(string)
	if !ok {
		t.Fatal("expected 'params' in error Params")
	}
	if params != "options.target" {
		t.Errorf("expected 'options.target', got %q", params)
	}
}
