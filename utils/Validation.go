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
	"net/http"
	"reflect"
	"strings"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func getValidator() *validator.Validate {
	if validate == nil {
		validate = validator.New()
	}
	return validate
}

// ValidateObject checks 'validate' tags on the object and reports missing
// required fields by their json names.
func ValidateObject(object interface{}) error {
	err := getValidator().Struct(object)
	if err == nil {
		return nil
	}
	missingParams := make([]string, 0)
	for _, err := range err.(validator.ValidationErrors) {
		if err.Tag() == "required" {
			missingParams = append(missingParams, err.StructNamespace())
		}
	}
	if len(missingParams) == 0 {
		return nil
	}
	jsonNames := make([]string, 0, len(missingParams))
	for _, namespace := range missingParams {
		// drop the topmost struct name from the namespace
		path := strings.Split(namespace, ".")[1:]
		jsonNames = append(jsonNames, resolveJsonPath(reflect.TypeOf(object), path))
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.RequiredParamsMissing,
		Message: exception.RequiredParamsMissingMsg,
		Params:  map[string]interface{}{"params": strings.Join(jsonNames, ", ")},
	}
}

func resolveJsonPath(value reflect.Type, path []string) string {
	if len(path) == 0 {
		return ""
	}
	current, rest := path[0], path[1:]
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if field.Name != current {
			continue
		}
		name := getJsonTag(field)
		if len(rest) == 0 {
			return name
		}
		nextType := field.Type
		switch nextType.Kind() {
		case reflect.Pointer, reflect.Slice:
			nextType = nextType.Elem()
		}
		if nextType.Kind() != reflect.Struct {
			return name
		}
		return name + "." + resolveJsonPath(nextType, rest)
	}
	return strings.Join(path, ".")
}

func getJsonTag(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	switch jsonTag {
	case "-", "":
		return field.Name
	default:
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			return field.Name
		}
		return name
	}
}
