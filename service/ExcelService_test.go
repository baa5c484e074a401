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
	"strings"
	"testing"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/exception"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/stretchr/testify/assert"
)

type runOverviewServiceMock struct {
	GetRunOverviewFunc func(runId string) (*view.RunOverview, error)
}

func (m *runOverviewServiceMock) GetRunOverview(runId string) (*view.RunOverview, error) {
	return m.GetRunOverviewFunc(runId)
}

func TestExportRunReport_SheetLayout(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	overview := &view.RunOverview{
		RunId: "R1",
		Versions: []view.JobVersion{
			{RunId: "R1", Version: 1, ProjectCode: "PS001", JobName: "dbo.usp_LoadOrders", Status: "success", TokenCount: 10, CreatedAt: createdAt, CreatedBy: "worker"},
			{RunId: "R1", Version: 2, ProjectCode: "PS001", JobName: "dbo.usp_LoadOrders", Status: "running", TokenCount: 20, CreatedAt: createdAt, CreatedBy: "worker"},
		},
		Transformations: []view.TransformationIteration{
			{RunId: "R1", Iteration: 1, TransformationName: "date_functions", Status: "success", TokenCount: 5, CreatedAt: createdAt, CreatedBy: "worker"},
		},
		Schema: &view.SchemaDetails{RunId: "R1", Status: "success", TableCount: 12},
		DbtArtifacts: []view.DbtArtifacts{
			{RunId: "R1", SchemaYml: "version: 2"},
		},
		Summary: view.RunSummary{
			VersionCount:        2,
			IterationCount:      1,
			TransformationCount: 1,
			TotalTokenCount:     35,
		},
	}
	service := &excelServiceImpl{
		runOverviewService: &runOverviewServiceMock{
			GetRunOverviewFunc: func(runId string) (*view.RunOverview, error) { return overview, nil },
		},
	}

	workbook, filename, err := service.ExportRunReport("R1")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "run_report_r1_"), "unexpected filename: %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"), "unexpected filename: %s", filename)

	assert.ElementsMatch(t,
		[]string{view.SummarySheetName, view.VersionsSheetName, view.TransformationsSheetName},
		workbook.GetSheetList())

	summaryCells := map[string]string{
		"A1":  view.SummarySheetName,
		"A2":  view.RunIDColumnName,
		"B2":  "R1",
		"B3":  "PS001",
		"B4":  "dbo.usp_LoadOrders",
		"B5":  "running",
		"B6":  "2",
		"B7":  "1",
		"B8":  "1",
		"B9":  "35",
		"B10": "success",
		"B11": "1",
	}
	for cell, expected := range summaryCells {
		value, err := workbook.GetCellValue(view.SummarySheetName, cell)
		assert.NoError(t, err)
		assert.Equal(t, expected, value, "summary cell %s", cell)
	}

	versionHeader := []string{
		view.VersionColumnName, view.JobNameColumnName, view.StatusColumnName,
		view.SourceObjectColumnName, view.ConnectionColumnName, view.TokenCountColumnName,
		view.ChunkCountColumnName, view.ErrorDetailsColumnName, view.CreatedAtColumnName,
		view.CreatedByColumnName,
	}
	for i, expected := range versionHeader {
		cell := string(rune('A'+i)) + "1"
		value, err := workbook.GetCellValue(view.VersionsSheetName, cell)
		assert.NoError(t, err)
		assert.Equal(t, expected, value, "versions header %s", cell)
	}
	firstVersion, err := workbook.GetCellValue(view.VersionsSheetName, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "1", firstVersion)
	secondVersion, err := workbook.GetCellValue(view.VersionsSheetName, "A3")
	assert.NoError(t, err)
	assert.Equal(t, "2", secondVersion)

	transformationName, err := workbook.GetCellValue(view.TransformationsSheetName, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "date_functions", transformationName)
	iteration, err := workbook.GetCellValue(view.TransformationsSheetName, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "1", iteration)
}

func TestExportRunReport_OverviewErrorPropagates(t *testing.T) {
	overviewErr := &exception.CustomError{
		Status:  404,
		Code:    exception.RunNotFound,
		Message: exception.RunNotFoundMsg,
		Params:  map[string]interface{}{"runId": "R404"},
	}
	service := &excelServiceImpl{
		runOverviewService: &runOverviewServiceMock{
			GetRunOverviewFunc: func(runId string) (*view.RunOverview, error) { return nil, overviewErr },
		},
	}

	workbook, filename, err := service.ExportRunReport("R404")

	assert.Nil(t, workbook)
	assert.Equal(t, "", filename)
	assert.Equal(t, overviewErr, err)
}
