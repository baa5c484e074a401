package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
)

type ExportService interface {
	BuildRunArchive(runId string) (*view.RunArchive, error)
	StoreRunArchive(runId string) (*view.RunArchive, error)
	GetRunArchive(runId string) (*view.RunArchive, error)
}

func NewExportService(runOverviewService RunOverviewService, dbtModelService DbtModelService, excelService ExcelService, minioStorageService MinioStorageService, minioStorageCreds *view.MinioStorageCreds) ExportService {
	return &exportServiceImpl{
		runOverviewService:  runOverviewService,
		dbtModelService:     dbtModelService,
		excelService:        excelService,
		minioStorageService: minioStorageService,
		minioStorageCreds:   minioStorageCreds,
	}
}

type exportServiceImpl struct {
	runOverviewService  RunOverviewService
	dbtModelService     DbtModelService
	excelService        ExcelService
	minioStorageService MinioStorageService
	minioStorageCreds   *view.MinioStorageCreds
}

// BuildRunArchive collects everything the platform produced for a run into one zip:
// the overview json, converted definitions, transformation outputs, the converted
// schema, the rendered dbt project and the xlsx report.
func (e exportServiceImpl) BuildRunArchive(runId string) (*view.RunArchive, error) {
	overview, err := e.runOverviewService.GetRunOverview(runId)
	if err != nil {
		return nil, err
	}

	zipBuf := bytes.Buffer{}
	zw := zip.NewWriter(&zipBuf)

	overviewBytes, err := json.MarshalIndent(overview, "", "    ")
	if err != nil {
		return nil, err
	}
	err = addFileToZip(zw, "overview.json", overviewBytes)
	if err != nil {
		return nil, err
	}

	for _, version := range overview.Versions {
		if version.ConvertedDefinition == "" {
			continue
		}
		name := fmt.Sprintf("versions/v%d_%s.sql", version.Version, slug.Make(version.JobName))
		err = addFileToZip(zw, name, []byte(version.ConvertedDefinition))
		if err != nil {
			return nil, err
		}
	}

	for _, iteration := range overview.Transformations {
		if iteration.OutputDefinition == "" {
			continue
		}
		name := fmt.Sprintf("transformations/%s/iteration_%d.sql", slug.Make(iteration.TransformationName), iteration.Iteration)
		err = addFileToZip(zw, name, []byte(iteration.OutputDefinition))
		if err != nil {
			return nil, err
		}
	}

	if overview.Schema != nil && overview.Schema.ConvertedSchema != "" {
		err = addFileToZip(zw, "schema/converted_schema.sql", []byte(overview.Schema.ConvertedSchema))
		if err != nil {
			return nil, err
		}
	}

	dbtProject, err := e.dbtModelService.RenderDbtProject(runId)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
	} else {
		for _, file := range dbtProject.Files {
			err = addFileToZip(zw, "dbt/"+file.Path, []byte(file.Content))
			if err != nil {
				return nil, err
			}
		}
	}

	workbook, reportName, err := e.excelService.ExportRunReport(runId)
	if err != nil {
		return nil, err
	}
	reportBuf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	err = addFileToZip(zw, reportName, reportBuf.Bytes())
	if err != nil {
		return nil, err
	}

	err = zw.Close()
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("run_%v_%v.zip", slug.Make(runId), time.Now().Format("2006-01-02 15-04-05"))
	return &view.RunArchive{RunId: runId, FileName: filename, Data: zipBuf.Bytes()}, nil
}

func (e exportServiceImpl) StoreRunArchive(runId string) (*view.RunArchive, error) {
	runArchive, err := e.BuildRunArchive(runId)
	if err != nil {
		return nil, err
	}
	if e.minioStorageCreds.IsActive {
		err = e.minioStorageService.UploadFile(context.Background(), view.RUN_EXPORTS_TABLE, runId, runArchive.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload run archive to minio storage: %w", err)
		}
		log.Infof("Run archive for %s was uploaded to minio storage", runId)
	}
	return runArchive, nil
}

func (e exportServiceImpl) GetRunArchive(runId string) (*view.RunArchive, error) {
	if e.minioStorageCreds.IsActive {
		data, err := e.minioStorageService.GetFile(context.Background(), view.RUN_EXPORTS_TABLE, runId)
		if err != nil {
			log.Warnf("failed to get run archive for %s from minio storage: %s", runId, err.Error())
		}
		if err == nil && len(data) > 0 {
			return &view.RunArchive{RunId: runId, FileName: fmt.Sprintf("run_%v.zip", slug.Make(runId)), Data: data}, nil
		}
	}
	return e.BuildRunArchive(runId)
}

func addFileToZip(zw *zip.Writer, name string, content []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = fw.Write(content)
	if err != nil {
		return err
	}
	return nil
}
