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

package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/controller"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/db"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/metrics"
	midldleware "github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/middleware"
	migration "github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/migration/service"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/repository"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/service"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	formatter := prefixed.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	log.SetFormatter(&formatter)
	mw := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   "logs/migrationhub.log",
		MaxSize:    10, // megabytes
		MaxBackups: 10,
	})
	log.SetOutput(mw)
}

func main() {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		log.Fatalf("Failed to read system configuration: %s", err.Error())
	}
	basePath := systemInfoService.GetBasePath()

	if logLevel, err := log.ParseLevel(systemInfoService.GetLogLevel()); err == nil {
		log.SetLevel(logLevel)
	}

	readyChan := make(chan bool)
	healthController := controller.NewHealthController(readyChan)

	r := mux.NewRouter().SkipClean(true).UseEncodedPath()
	r.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	r.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)

	creds := systemInfoService.GetCredsFromEnv()
	cp := db.NewConnectionProvider(creds)

	dbMigrationService, err := migration.NewDBMigrationService(cp, basePath)
	if err != nil {
		log.Fatalf("Failed to create DB migration service: %s", err.Error())
	}
	currentVersion, newVersion, migrationApplied, err := dbMigrationService.Migrate()
	if err != nil {
		log.Fatalf("Failed to migrate DB: %s", err.Error())
	}
	if migrationApplied {
		log.Infof("DB migration from %d to %d applied", currentVersion, newVersion)
	}

	projectRepository, err := repository.NewProjectRepositoryPG(cp)
	if err != nil {
		log.Fatalf("Failed to create project repository: %s", err.Error())
	}
	userRepository, err := repository.NewUserRepositoryPG(cp)
	if err != nil {
		log.Fatalf("Failed to create user repository: %s", err.Error())
	}
	roleRepository := repository.NewRoleRepository(cp)
	cleanupRepository := repository.NewCleanupRepository(cp)
	metricsRepository := repository.NewMetricsRepository(cp)

	minioStorageCreds := systemInfoService.GetMinioStorageCreds()
	minioStorageService := service.NewMinioStorageService(minioStorageCreds)
	if minioStorageCreds.IsActive {
		err = minioStorageService.CreateBucketIfNotExists(context.Background())
		if err != nil {
			log.Fatalf("Failed to create minio bucket: %s", err.Error())
		}
	}

	userService := service.NewUserService(userRepository, roleRepository, projectRepository)
	zeroDayAdminService := service.NewZeroDayAdminService(userService, userRepository, roleRepository, systemInfoService)
	cleanupService := service.NewCleanupService(cleanupRepository, minioStorageService, minioStorageCreds, systemInfoService.GetCleanupRetention())
	metricsService := service.NewMetricsService(metricsRepository)

	err = zeroDayAdminService.CreateZeroDayAdmin()
	if err != nil {
		log.Errorf("Zero day admin user creation failed: %s", err.Error())
	}

	err = cleanupService.CreateCleanupJob(systemInfoService.GetCleanupSchedule())
	if err != nil {
		log.Errorf("Failed to create cleanup job: %s", err.Error())
	}
	err = metricsService.CreateJob(systemInfoService.GetMetricsGetterSchedule())
	if err != nil {
		log.Errorf("Failed to create metrics getter job: %s", err.Error())
	}

	systemInfoController := controller.NewSystemInfoController(systemInfoService)
	cleanupController := controller.NewCleanupController(cleanupService)

	metrics.RegisterAllPrometheusApplicationMetrics()
	r.Use(midldleware.PrometheusMiddleware)
	r.Path("/metrics").Handler(promhttp.Handler())

	r.HandleFunc("/api/v1/system/info", systemInfoController.GetSystemInfo).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/system/cleanup", cleanupController.GetLastCleanup).Methods(http.MethodGet)

	log.Info("Server is ready")
	readyChan <- true

	var handler http.Handler = handlers.CompressHandler(r)
	if originAllowed := systemInfoService.GetOriginAllowed(); originAllowed != "" {
		handler = handlers.CORS(handlers.AllowedOrigins([]string{originAllowed}))(handler)
	}
	listenAddr := systemInfoService.GetListenAddress()
	log.Infof("Listen addr = %s", listenAddr)
	log.Fatalf("%v", http.ListenAndServe(listenAddr, handler))
}
