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

func TestClampPaging(t *testing.T) {

	limit, page := ClampPaging(10, 1, 100, 500)
	if limit != 10 || page != 1 {
		t.Errorf("Expected limit: 10, page: 1; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(0, 3, 100, 500)
	if limit != 100 || page != 3 {
		t.Errorf("Expected limit: 100, page: 3; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(-5, 0, 100, 500)
	if limit != 100 || page != 0 {
		t.Errorf("Expected limit: 100, page: 0; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(10000, 0, 100, 500)
	if limit != 500 || page != 0 {
		t.Errorf("Expected limit: 500, page: 0; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(500, 0, 100, 500)
	if limit != 500 || page != 0 {
		t.Errorf("Expected limit: 500, page: 0; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(10, -1, 100, 500)
	if limit != 10 || page != 0 {
		t.Errorf("Expected limit: 10, page: 0; Got limit: %d, page: %d", limit, page)
	}

	limit, page = ClampPaging(0, -1, 100, 500)
	if limit != 100 || page != 0 {
		t.Errorf("Expected limit: 100, page: 0; Got limit: %d, page: %d", limit, page)
	}
}
