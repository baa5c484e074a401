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

package service

import (
	"os"
	"path"
	"strings"
	"testing"
)

func makeMigrationsDir(t *testing.T, filenames ...string) string {
	t.Helper()
	basePath := t.TempDir()
	migrationsDir := path.Join(basePath, "resources", "migrations")
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, filename := range filenames {
		if err := os.WriteFile(path.Join(migrationsDir, filename), []byte("select 1;"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return basePath
}

func TestNewDBMigrationService_ValidMigrationSet(t *testing.T) {
	basePath := makeMigrationsDir(t,
		"1_init.up.sql", "1_init.down.sql",
		"2_default_roles.up.sql", "2_default_roles.down.sql",
		"3_indexes.up.sql",
	)

	service, err := NewDBMigrationService(nil, basePath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	impl := service.(*dbMigrationServiceImpl)
	if len(impl.upMigrations) != 3 {
		t.Errorf("expected 3 up migrations, got %d", len(impl.upMigrations))
	}
	if len(impl.downMigrations) != 2 {
		t.Errorf("expected 2 down migrations, got %d", len(impl.downMigrations))
	}
}

func TestNewDBMigrationService_IgnoresForeignFiles(t *testing.T) {
	basePath := makeMigrationsDir(t,
		"1_init.up.sql",
		"README.md",
		"notes.sql",
		"x_bad.up.sql",
	)

	service, err := NewDBMigrationService(nil, basePath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	impl := service.(*dbMigrationServiceImpl)
	if len(impl.upMigrations) != 1 {
		t.Errorf("expected 1 up migration, got %d", len(impl.upMigrations))
	}
}

func TestNewDBMigrationService_GapInNumbering(t *testing.T) {
	basePath := makeMigrationsDir(t, "1_init.up.sql", "3_indexes.up.sql")

	_, err := NewDBMigrationService(nil, basePath)
	if err == nil {
		t.Fatal("expected an error for a gap in migration numbers")
	}
	if !strings.Contains(err.Error(), "highest migration number") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewDBMigrationService_DuplicateNumber(t *testing.T) {
	basePath := makeMigrationsDir(t, "1_init.up.sql", "1_other.up.sql", "2_x.up.sql")

	_, err := NewDBMigrationService(nil, basePath)
	if err == nil {
		t.Fatal("expected an error for a duplicate migration number")
	}
	if !strings.Contains(err.Error(), "duplicate migration number") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewDBMigrationService_OrphanDownMigration(t *testing.T) {
	basePath := makeMigrationsDir(t, "1_init.up.sql", "2_x.down.sql")

	_, err := NewDBMigrationService(nil, basePath)
	if err == nil {
		t.Fatal("expected an error for a down migration without an up pair")
	}
	if !strings.Contains(err.Error(), "doesn't belong to any of up migrations") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewDBMigrationService_MissingFolder(t *testing.T) {
	_, err := NewDBMigrationService(nil, t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a missing migrations folder")
	}
}

func TestCalculateMigrationHash(t *testing.T) {
	first := calculateMigrationHash(1, []byte("create table project();"))
	same := calculateMigrationHash(1, []byte("create table project();"))
	differentNumber := calculateMigrationHash(2, []byte("create table project();"))
	differentContent := calculateMigrationHash(1, []byte("create table roles();"))

	if first != same {
		t.Error("hash must be deterministic")
	}
	if first == differentNumber {
		t.Error("hash must depend on the migration number")
	}
	if first == differentContent {
		t.Error("hash must depend on the migration content")
	}
}
