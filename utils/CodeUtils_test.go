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

import "testing"

func TestFormatEntityCode(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		width    int
		number   int
		expected string
	}{
		{"ProjectFirst", "PS", 3, 1, "PS001"},
		{"ProjectPaddingFull", "PS", 3, 999, "PS999"},
		{"ProjectPastPadding", "PS", 3, 1000, "PS1000"},
		{"RequestFirst", "REQ", 4, 1, "REQ0001"},
		{"RequestMiddle", "REQ", 4, 123, "REQ0123"},
		{"RequestPastPadding", "REQ", 4, 10000, "REQ10000"},
		{"Connection", "CON", 3, 12, "CON012"},
		{"LlmModel", "LLM", 3, 7, "LLM007"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := FormatEntityCode(tc.prefix, tc.width, tc.number)
			if code != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, code)
			}
		})
	}
}

func TestParseEntityCodeNumber(t *testing.T) {
	number, err := ParseEntityCodeNumber("PS001", "PS")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if number != 1 {
		t.Errorf("expected 1, got %d", number)
	}

	number, err = ParseEntityCodeNumber("REQ10000", "REQ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if number != 10000 {
		t.Errorf("expected 10000, got %d", number)
	}

	if _, err = ParseEntityCodeNumber("CON005", "PS"); err == nil {
		t.Error("expected an error for a foreign prefix")
	}
	if _, err = ParseEntityCodeNumber("PSabc", "PS"); err == nil {
		t.Error("expected an error for a non-numeric suffix")
	}
}

func TestFormatEntityCode_RoundTrip(t *testing.T) {
	for _, number := range []int{1, 99, 999, 1000, 12345} {
		code := FormatEntityCode("PS", 3, number)
		parsed, err := ParseEntityCodeNumber(code, "PS")
		if err != nil {
			t.Fatalf("failed to parse %s: %v", code, err)
		}
		if parsed != number {
			t.Errorf("round trip of %d via %s produced %d", number, code, parsed)
		}
	}
}
