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

package entity

import (
	"fmt"
)

const MODEL_ID_KEY = "model_id"
const SOURCE_DIALECT_KEY = "source_dialect"
const TARGET_DIALECT_KEY = "target_dialect"
const STOP_REASON_KEY = "stop_reason"
const PROMPT_VERSION_KEY = "prompt_version"
const COMPLEXITY_KEY = "complexity"
const INPUT_TOKENS_KEY = "input_tokens"
const OUTPUT_TOKENS_KEY = "output_tokens"
const WARNINGS_KEY = "warnings"

type Metadata map[string]interface{}

func (m Metadata) GetStringValue(field string) string {
	if fieldValue, ok := m[field].(string); ok {
		return fieldValue
	}
	return ""
}

func (m Metadata) GetIntValue(field string) int {
	//parse as float64 because unmarshal reads json number as float64
	if fieldValue, ok := m[field].(float64); ok {
		return int(fieldValue)
	}
	if fieldValue, ok := m[field].(int); ok {
		return fieldValue
	}
	return 0
}

func (m Metadata) GetObject(field string) interface{} {
	if field, ok := m[field]; ok {
		return field
	}
	return nil
}

func (m Metadata) GetStringArray(field string) []string {
	if values, ok := m[field].([]interface{}); ok {
		var valuesArr []string
		for _, l := range values {
			if strL, ok := l.(string); ok {
				valuesArr = append(valuesArr, strL)
			}
		}
		return valuesArr
	}
	return make([]string, 0)
}

func (m Metadata) GetMapStringToInterface(field string) (map[string]interface{}, error) {
	if val, ok := m[field]; ok {
		if values, ok := val.(map[string]interface{}); ok {
			return values, nil
		} else {
			return nil, fmt.Errorf("incorrect metadata value type, expecting map string to interface, value: %+v", val)
		}
	}
	return make(map[string]interface{}), nil
}

func (m Metadata) SetModelId(modelId string) {
	m[MODEL_ID_KEY] = modelId
}

func (m Metadata) GetModelId() string {
	if modelId, ok := m[MODEL_ID_KEY].(string); ok {
		return modelId
	}
	return ""
}

func (m Metadata) SetSourceDialect(dialect string) {
	m[SOURCE_DIALECT_KEY] = dialect
}

func (m Metadata) GetSourceDialect() string {
	if dialect, ok := m[SOURCE_DIALECT_KEY].(string); ok {
		return dialect
	}
	return ""
}

func (m Metadata) SetTargetDialect(dialect string) {
	m[TARGET_DIALECT_KEY] = dialect
}

func (m Metadata) GetTargetDialect() string {
	if dialect, ok := m[TARGET_DIALECT_KEY].(string); ok {
		return dialect
	}
	return ""
}

func (m Metadata) SetStopReason(stopReason string) {
	m[STOP_REASON_KEY] = stopReason
}

func (m Metadata) GetStopReason() string {
	if stopReason, ok := m[STOP_REASON_KEY].(string); ok {
		return stopReason
	}
	return ""
}

func (m Metadata) SetPromptVersion(promptVersion string) {
	m[PROMPT_VERSION_KEY] = promptVersion
}

func (m Metadata) GetPromptVersion() string {
	if promptVersion, ok := m[PROMPT_VERSION_KEY].(string); ok {
		return promptVersion
	}
	return ""
}

func (m Metadata) SetComplexity(complexity string) {
	m[COMPLEXITY_KEY] = complexity
}

func (m Metadata) GetComplexity() string {
	if complexity, ok := m[COMPLEXITY_KEY].(string); ok {
		return complexity
	}
	return ""
}

func (m Metadata) SetInputTokens(tokens int) {
	m[INPUT_TOKENS_KEY] = tokens
}

func (m Metadata) GetInputTokens() int {
	return m.GetIntValue(INPUT_TOKENS_KEY)
}

func (m Metadata) SetOutputTokens(tokens int) {
	m[OUTPUT_TOKENS_KEY] = tokens
}

func (m Metadata) GetOutputTokens() int {
	return m.GetIntValue(OUTPUT_TOKENS_KEY)
}

func (m Metadata) SetWarnings(warnings []string) {
	m[WARNINGS_KEY] = warnings
}

func (m Metadata) GetWarnings() []string {
	return m.GetStringArray(WARNINGS_KEY)
}

func (m Metadata) MergeMetadata(other Metadata) {
	for k, v := range other {
		m[k] = v
	}
}
