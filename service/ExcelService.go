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
	"fmt"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
)

type ExcelService interface {
	ExportRunReport(runId string) (*excelize.File, string, error)
}

func NewExcelService(runOverviewService RunOverviewService) ExcelService {
	return &excelServiceImpl{runOverviewService: runOverviewService}
}

type excelServiceImpl struct {
	runOverviewService RunOverviewService
}

func (e excelServiceImpl) ExportRunReport(runId string) (*excelize.File, string, error) {
	overview, err := e.runOverviewService.GetRunOverview(runId)
	if err != nil {
		return nil, "", err
	}
	workbook := excelize.NewFile()
	report := runReport{
		workbook: workbook,
	}
	report.firstSheetIndex, err = report.workbook.NewSheet(view.SummarySheetName)
	if err != nil {
		return nil, "", err
	}
	err = report.createSummarySheet(overview)
	if err != nil {
		return nil, "", err
	}
	err = report.createVersionsSheet(overview.Versions)
	if err != nil {
		return nil, "", err
	}
	err = report.createTransformationsSheet(overview.Transformations)
	if err != nil {
		return nil, "", err
	}
	err = report.setupSettings()
	if err != nil {
		return nil, "", fmt.Errorf("failed to delete default Sheet1: %v", err.Error())
	}
	filename := fmt.Sprintf("run_report_%v_%v.xlsx", slug.Make(overview.RunId), time.Now().Format("2006-01-02 15-04-05"))
	return report.workbook, filename, nil
}

type runReport struct {
	workbook        *excelize.File
	firstSheetIndex int
}

func (r *runReport) setupSettings() error {
	r.workbook.SetActiveSheet(r.firstSheetIndex)
	err := r.workbook.DeleteSheet("Sheet1")
	if err != nil {
		return err
	}
	return nil
}

func (r *runReport) createSummarySheet(overview *view.RunOverview) error {
	summaryFirstHeaderStyle := getSummaryFirstHeaderStyle(r.workbook)
	summaryHeaderStyle := getSummaryHeaderStyle(r.workbook)
	summaryCellStyle := getSummaryCellStyle(r.workbook)

	latest := latestVersion(overview.Versions)

	cellsValues := make(map[string]interface{})
	cellsValues["A1"] = view.SummarySheetName
	cellsValues["A2"] = view.RunIDColumnName
	cellsValues["A3"] = view.ProjectCodeColumnName
	cellsValues["A4"] = view.JobNameColumnName
	cellsValues["A5"] = "Latest status"
	cellsValues["A6"] = "Job versions"
	cellsValues["A7"] = "Transformation iterations"
	cellsValues["A8"] = "Distinct transformations"
	cellsValues["A9"] = "Total token count"
	cellsValues["A10"] = "Schema conversion status"
	cellsValues["A11"] = "dbt artifact sets"

	cellsValues["B1"] = ""
	cellsValues["B2"] = overview.RunId
	if latest != nil {
		cellsValues["B3"] = latest.ProjectCode
		cellsValues["B4"] = latest.JobName
		cellsValues["B5"] = latest.Status
	}
	cellsValues["B6"] = overview.Summary.VersionCount
	cellsValues["B7"] = overview.Summary.IterationCount
	cellsValues["B8"] = overview.Summary.TransformationCount
	cellsValues["B9"] = overview.Summary.TotalTokenCount
	if overview.Schema != nil {
		cellsValues["B10"] = overview.Schema.Status
	}
	cellsValues["B11"] = len(overview.DbtArtifacts)

	err := setCellsValues(r.workbook, view.SummarySheetName, cellsValues)
	if err != nil {
		return err
	}
	err = r.workbook.SetCellStyle(view.SummarySheetName, "A1", "A1", summaryFirstHeaderStyle)
	if err != nil {
		return err
	}
	err = r.workbook.SetCellStyle(view.SummarySheetName, "A2", "A11", summaryHeaderStyle)
	if err != nil {
		return err
	}
	err = r.workbook.SetCellStyle(view.SummarySheetName, "B1", "B11", summaryCellStyle)
	if err != nil {
		return err
	}
	r.workbook.SetColWidth(view.SummarySheetName, "A", "A", 30)
	r.workbook.SetColWidth(view.SummarySheetName, "B", "B", 40)
	return nil
}

func (r *runReport) createVersionsSheet(versions []view.JobVersion) error {
	headerRowIndex := 1
	_, err := r.workbook.NewSheet(view.VersionsSheetName)
	if err != nil {
		return err
	}
	headerStyle := getHeaderStyle(r.workbook)
	evenCellStyle := getEvenCellStyle(r.workbook)
	oddCellStyle := getOddCellStyle(r.workbook)

	cellsValues := make(map[string]interface{})
	cellsValues[fmt.Sprintf("A%d", headerRowIndex)] = view.VersionColumnName
	cellsValues[fmt.Sprintf("B%d", headerRowIndex)] = view.JobNameColumnName
	cellsValues[fmt.Sprintf("C%d", headerRowIndex)] = view.StatusColumnName
	cellsValues[fmt.Sprintf("D%d", headerRowIndex)] = view.SourceObjectColumnName
	cellsValues[fmt.Sprintf("E%d", headerRowIndex)] = view.ConnectionColumnName
	cellsValues[fmt.Sprintf("F%d", headerRowIndex)] = view.TokenCountColumnName
	cellsValues[fmt.Sprintf("G%d", headerRowIndex)] = view.ChunkCountColumnName
	cellsValues[fmt.Sprintf("H%d", headerRowIndex)] = view.ErrorDetailsColumnName
	cellsValues[fmt.Sprintf("I%d", headerRowIndex)] = view.CreatedAtColumnName
	cellsValues[fmt.Sprintf("J%d", headerRowIndex)] = view.CreatedByColumnName
	err = r.workbook.SetCellStyle(view.VersionsSheetName, fmt.Sprintf("A%d", headerRowIndex), fmt.Sprintf("J%d", headerRowIndex), headerStyle)
	if err != nil {
		return err
	}
	r.workbook.SetColWidth(view.VersionsSheetName, "A", "A", 10)
	r.workbook.SetColWidth(view.VersionsSheetName, "B", "E", 30)
	r.workbook.SetColWidth(view.VersionsSheetName, "F", "G", 14)
	r.workbook.SetColWidth(view.VersionsSheetName, "H", "H", 50)
	r.workbook.SetColWidth(view.VersionsSheetName, "I", "J", 20)

	rowIndex := 2
	for _, version := range versions {
		cellsValues[fmt.Sprintf("A%d", rowIndex)] = version.Version
		cellsValues[fmt.Sprintf("B%d", rowIndex)] = version.JobName
		cellsValues[fmt.Sprintf("C%d", rowIndex)] = version.Status
		cellsValues[fmt.Sprintf("D%d", rowIndex)] = version.SourceObject
		cellsValues[fmt.Sprintf("E%d", rowIndex)] = version.ConnectionId
		cellsValues[fmt.Sprintf("F%d", rowIndex)] = version.TokenCount
		cellsValues[fmt.Sprintf("G%d", rowIndex)] = version.ChunkCount
		cellsValues[fmt.Sprintf("H%d", rowIndex)] = version.ErrorDetails
		cellsValues[fmt.Sprintf("I%d", rowIndex)] = version.CreatedAt.Format("2006-01-02 15:04:05")
		cellsValues[fmt.Sprintf("J%d", rowIndex)] = version.CreatedBy
		if rowIndex%2 == 0 {
			err = r.workbook.SetCellStyle(view.VersionsSheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("J%d", rowIndex), evenCellStyle)
		} else {
			err = r.workbook.SetCellStyle(view.VersionsSheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("J%d", rowIndex), oddCellStyle)
		}
		if err != nil {
			return err
		}
		rowIndex++
	}
	err = setCellsValues(r.workbook, view.VersionsSheetName, cellsValues)
	if err != nil {
		return fmt.Errorf("failed to set cell values: %v", err.Error())
	}
	err = r.workbook.AutoFilter(view.VersionsSheetName, fmt.Sprintf("A%d:J%d", headerRowIndex, headerRowIndex), []excelize.AutoFilterOptions{})
	if err != nil {
		return err
	}
	return nil
}

func (r *runReport) createTransformationsSheet(iterations []view.TransformationIteration) error {
	headerRowIndex := 1
	_, err := r.workbook.NewSheet(view.TransformationsSheetName)
	if err != nil {
		return err
	}
	headerStyle := getHeaderStyle(r.workbook)
	evenCellStyle := getEvenCellStyle(r.workbook)
	oddCellStyle := getOddCellStyle(r.workbook)

	cellsValues := make(map[string]interface{})
	cellsValues[fmt.Sprintf("A%d", headerRowIndex)] = view.TransformationNameColumnName
	cellsValues[fmt.Sprintf("B%d", headerRowIndex)] = view.IterationColumnName
	cellsValues[fmt.Sprintf("C%d", headerRowIndex)] = view.StatusColumnName
	cellsValues[fmt.Sprintf("D%d", headerRowIndex)] = view.TokenCountColumnName
	cellsValues[fmt.Sprintf("E%d", headerRowIndex)] = view.ErrorDetailsColumnName
	cellsValues[fmt.Sprintf("F%d", headerRowIndex)] = view.CreatedAtColumnName
	cellsValues[fmt.Sprintf("G%d", headerRowIndex)] = view.CreatedByColumnName
	err = r.workbook.SetCellStyle(view.TransformationsSheetName, fmt.Sprintf("A%d", headerRowIndex), fmt.Sprintf("G%d", headerRowIndex), headerStyle)
	if err != nil {
		return err
	}
	r.workbook.SetColWidth(view.TransformationsSheetName, "A", "A", 30)
	r.workbook.SetColWidth(view.TransformationsSheetName, "B", "D", 14)
	r.workbook.SetColWidth(view.TransformationsSheetName, "E", "E", 50)
	r.workbook.SetColWidth(view.TransformationsSheetName, "F", "G", 20)

	rowIndex := 2
	for _, iteration := range iterations {
		cellsValues[fmt.Sprintf("A%d", rowIndex)] = iteration.TransformationName
		cellsValues[fmt.Sprintf("B%d", rowIndex)] = iteration.Iteration
		cellsValues[fmt.Sprintf("C%d", rowIndex)] = iteration.Status
		cellsValues[fmt.Sprintf("D%d", rowIndex)] = iteration.TokenCount
		cellsValues[fmt.Sprintf("E%d", rowIndex)] = iteration.ErrorDetails
		cellsValues[fmt.Sprintf("F%d", rowIndex)] = iteration.CreatedAt.Format("2006-01-02 15:04:05")
		cellsValues[fmt.Sprintf("G%d", rowIndex)] = iteration.CreatedBy
		if rowIndex%2 == 0 {
			err = r.workbook.SetCellStyle(view.TransformationsSheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("G%d", rowIndex), evenCellStyle)
		} else {
			err = r.workbook.SetCellStyle(view.TransformationsSheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("G%d", rowIndex), oddCellStyle)
		}
		if err != nil {
			return err
		}
		rowIndex++
	}
	err = setCellsValues(r.workbook, view.TransformationsSheetName, cellsValues)
	if err != nil {
		return fmt.Errorf("failed to set cell values: %v", err.Error())
	}
	err = r.workbook.AutoFilter(view.TransformationsSheetName, fmt.Sprintf("A%d:G%d", headerRowIndex, headerRowIndex), []excelize.AutoFilterOptions{})
	if err != nil {
		return err
	}
	return nil
}

func latestVersion(versions []view.JobVersion) *view.JobVersion {
	var latest *view.JobVersion
	for i := range versions {
		if latest == nil || versions[i].Version > latest.Version {
			latest = &versions[i]
		}
	}
	return latest
}

func setCellsValues(report *excelize.File, sheetName string, columnsValue map[string]interface{}) error {
	for key, value := range columnsValue {
		err := report.SetCellValue(sheetName, key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func getHeaderStyle(file *excelize.File) (style int) {
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: "Arial",
			Size:   10,
			Color:  "FFFFFF",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E2E5E8", Style: 1},
			{Type: "right", Color: "E2E5E8", Style: 1},
			{Type: "top", Color: "E2E5E8", Style: 1},
			{Type: "bottom", Color: "E2E5E8", Style: 1},
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4E79A0"},
			Pattern: 1,
		},
	})
	return headerStyle
}

func getSummaryFirstHeaderStyle(file *excelize.File) (style int) {
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: "Arial",
			Size:   10,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"DAE3ED"},
			Pattern: 1,
		},
	})
	return headerStyle
}

func getSummaryHeaderStyle(file *excelize.File) (style int) {
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: "Arial",
			Size:   10,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"DAE3ED"},
			Pattern: 1,
		},
	})
	return headerStyle
}

func getSummaryCellStyle(file *excelize.File) (style int) {
	summaryCellStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: "Arial",
			Size:   10,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	return summaryCellStyle
}

func getEvenCellStyle(file *excelize.File) (style int) {
	evenCellStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: "Arial",
			Size:   10,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E2E5E8", Style: 1},
			{Type: "right", Color: "E2E5E8", Style: 1},
			{Type: "top", Color: "E2E5E8", Style: 1},
			{Type: "bottom", Color: "E2E5E8", Style: 1},
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F5F7F8"},
			Pattern: 1,
		},
	})
	return evenCellStyle
}

func getOddCellStyle(file *excelize.File) (style int) {
	oddCellStyle, _ := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: "Arial",
			Size:   10,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E2E5E8", Style: 1},
			{Type: "right", Color: "E2E5E8", Style: 1},
			{Type: "top", Color: "E2E5E8", Style: 1},
			{Type: "bottom", Color: "E2E5E8", Style: 1},
		},
	})
	return oddCellStyle
}
