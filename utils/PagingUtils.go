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

// ClampPaging normalizes caller-supplied list paging.
// Non-positive limit falls back to defaultLimit, a limit above maxLimit is
// capped, a negative page becomes 0. Page count starts with 0.
func ClampPaging(limit int, page int, defaultLimit int, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	if page < 0 {
		page = 0
	}
	return limit, page
}
