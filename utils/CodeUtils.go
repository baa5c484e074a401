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
	"fmt"
	"strconv"
	"strings"
)

// FormatEntityCode renders a sequential code like PS001 or REQ0001.
// Width is a minimum, the number keeps growing past the padding (PS999 -> PS1000).
func FormatEntityCode(prefix string, width int, number int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, number)
}

func ParseEntityCodeNumber(code string, prefix string) (int, error) {
	if !strings.HasPrefix(code, prefix) {
		return 0, fmt.Errorf("code %s does not start with prefix %s", code, prefix)
	}
	number, err := strconv.Atoi(code[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("code %s has a non-numeric suffix: %v", code, err)
	}
	return number, nil
}
