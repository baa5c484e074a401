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
	"os"
	"strconv"
	"time"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	log "github.com/sirupsen/logrus"
)

const (
	ARTIFACT_DESCRIPTOR_VERSION      = "ARTIFACT_DESCRIPTOR_VERSION"
	BASE_PATH                        = "BASE_PATH"
	PRODUCTION_MODE                  = "PRODUCTION_MODE"
	LOG_LEVEL                        = "LOG_LEVEL"
	LISTEN_ADDRESS                   = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED                   = "ORIGIN_ALLOWED"
	MIGRATIONHUB_POSTGRESQL_HOST     = "MIGRATIONHUB_POSTGRESQL_HOST"
	MIGRATIONHUB_POSTGRESQL_PORT     = "MIGRATIONHUB_POSTGRESQL_PORT"
	MIGRATIONHUB_POSTGRESQL_DB_NAME  = "MIGRATIONHUB_POSTGRESQL_DB_NAME"
	MIGRATIONHUB_POSTGRESQL_USERNAME = "MIGRATIONHUB_POSTGRESQL_USERNAME"
	MIGRATIONHUB_POSTGRESQL_PASSWORD = "MIGRATIONHUB_POSTGRESQL_PASSWORD"
	PG_SSL_MODE                      = "PG_SSL_MODE"
	SYSTEM_NOTIFICATION              = "SYSTEM_NOTIFICATION"
	CLEANUP_SCHEDULE                 = "CLEANUP_SCHEDULE"
	CLEANUP_RETENTION_DAYS           = "CLEANUP_RETENTION_DAYS"
	METRICS_GETTER_SCHEDULE          = "METRICS_GETTER_SCHEDULE"
	INSECURE_PROXY                   = "INSECURE_PROXY"
	STORAGE_SERVER_USERNAME          = "STORAGE_SERVER_USERNAME"
	STORAGE_SERVER_PASSWORD          = "STORAGE_SERVER_PASSWORD"
	STORAGE_SERVER_CRT               = "STORAGE_SERVER_CRT"
	STORAGE_SERVER_URL               = "STORAGE_SERVER_URL"
	STORAGE_SERVER_BUCKET_NAME       = "STORAGE_SERVER_BUCKET_NAME"
	STORAGE_SERVER_ACTIVE            = "STORAGE_SERVER_ACTIVE"
	DATABRICKS_TEST_TIMEOUT_SEC      = "DATABRICKS_TEST_TIMEOUT_SEC"
	MIGRATIONHUB_ADMIN_EMAIL         = "MIGRATIONHUB_ADMIN_EMAIL"
	MIGRATIONHUB_ADMIN_PASSWORD      = "MIGRATIONHUB_ADMIN_PASSWORD"
)

type SystemInfoService interface {
	GetSystemInfo() *view.SystemInfo
	Init() error
	GetBasePath() string
	IsProductionMode() bool
	GetBackendVersion() string
	GetLogLevel() string
	GetListenAddress() string
	GetOriginAllowed() string
	GetPGHost() string
	GetPGPort() int
	GetPGDB() string
	GetPGUser() string
	GetPGPassword() string
	GetPGSSLMode() string
	GetCredsFromEnv() *view.DbCredentials
	GetCleanupSchedule() string
	GetCleanupRetention() time.Duration
	GetMetricsGetterSchedule() string
	InsecureProxyEnabled() bool
	GetMinioAccessKeyId() string
	GetMinioSecretAccessKey() string
	GetMinioCrt() string
	GetMinioEndpoint() string
	GetMinioBucketName() string
	IsMinioStorageActive() bool
	GetMinioStorageCreds() *view.MinioStorageCreds
	GetDatabricksTestTimeout() time.Duration
	GetZeroDayAdminCreds() (string, string, error)
}

func (g systemInfoServiceImpl) GetCredsFromEnv() *view.DbCredentials {
	return &view.DbCredentials{
		Host:     g.GetPGHost(),
		Port:     g.GetPGPort(),
		Database: g.GetPGDB(),
		Username: g.GetPGUser(),
		Password: g.GetPGPassword(),
		SSLMode:  g.GetPGSSLMode(),
	}
}

func (s systemInfoServiceImpl) GetMinioStorageCreds() *view.MinioStorageCreds {
	return &view.MinioStorageCreds{
		BucketName:      s.GetMinioBucketName(),
		IsActive:        s.IsMinioStorageActive(),
		Endpoint:        s.GetMinioEndpoint(),
		Crt:             s.GetMinioCrt(),
		AccessKeyId:     s.GetMinioAccessKeyId(),
		SecretAccessKey: s.GetMinioSecretAccessKey(),
	}
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) GetSystemInfo() *view.SystemInfo {
	return &view.SystemInfo{
		BackendVersion: g.GetBackendVersion(),
		ProductionMode: g.IsProductionMode(),
		Notification:   g.getSystemNotification(),
	}
}

func (g systemInfoServiceImpl) Init() error {
	g.setBasePath()
	if err := g.setProductionMode(); err != nil {
		return err
	}
	g.setBackendVersion()
	g.setLogLevel()
	g.setListenAddress()
	g.setOriginAllowed()
	g.setPGHost()
	if err := g.setPGPort(); err != nil {
		return err
	}
	g.setPGDB()
	g.setPGUser()
	g.setPGPassword()
	g.setPGSSLMode()
	g.setSystemNotification()
	g.setCleanupSchedule()
	if err := g.setCleanupRetention(); err != nil {
		return err
	}
	g.setMetricsGetterSchedule()
	g.setInsecureProxy()
	g.setMinioAccessKeyId()
	g.setMinioSecretAccessKey()
	g.setMinioCrt()
	g.setMinioEndpoint()
	g.setMinioBucketName()
	g.setMinioStorageActive()
	if err := g.setDatabricksTestTimeout(); err != nil {
		return err
	}

	return nil
}

func (g systemInfoServiceImpl) setBasePath() {
	g.systemInfoMap[BASE_PATH] = os.Getenv(BASE_PATH)
	if g.systemInfoMap[BASE_PATH] == "" {
		g.systemInfoMap[BASE_PATH] = "."
	}
}

func (g systemInfoServiceImpl) GetBasePath() string {
	return g.systemInfoMap[BASE_PATH].(string)
}

func (g systemInfoServiceImpl) setProductionMode() error {
	envVal := os.Getenv(PRODUCTION_MODE)
	if envVal == "" {
		envVal = "false"
	}
	productionMode, err := strconv.ParseBool(envVal)
	if err != nil {
		return fmt.Errorf("failed to parse %v env value: %v", PRODUCTION_MODE, err.Error())
	}
	g.systemInfoMap[PRODUCTION_MODE] = productionMode
	return nil
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.systemInfoMap[PRODUCTION_MODE].(bool)
}

func (g systemInfoServiceImpl) setBackendVersion() {
	version := os.Getenv(ARTIFACT_DESCRIPTOR_VERSION)
	if version == "" {
		version = "unknown"
	}
	g.systemInfoMap[ARTIFACT_DESCRIPTOR_VERSION] = version
}

func (g systemInfoServiceImpl) GetBackendVersion() string {
	return g.systemInfoMap[ARTIFACT_DESCRIPTOR_VERSION].(string)
}

func (g systemInfoServiceImpl) setLogLevel() {
	g.systemInfoMap[LOG_LEVEL] = os.Getenv(LOG_LEVEL)
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) setListenAddress() {
	listenAddr := os.Getenv(LISTEN_ADDRESS)
	if listenAddr == "" {
		listenAddr = ":8080"
	}
	g.systemInfoMap[LISTEN_ADDRESS] = listenAddr
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) setOriginAllowed() {
	g.systemInfoMap[ORIGIN_ALLOWED] = os.Getenv(ORIGIN_ALLOWED)
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) setPGHost() {
	host := os.Getenv(MIGRATIONHUB_POSTGRESQL_HOST)
	if host == "" {
		host = "localhost"
	}
	g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_HOST] = host
}

func (g systemInfoServiceImpl) GetPGHost() string {
	return g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_HOST].(string)
}

func (g systemInfoServiceImpl) setPGPort() error {
	portStr := os.Getenv(MIGRATIONHUB_POSTGRESQL_PORT)
	var port int
	var err error
	if portStr == "" {
		port = 5432
	} else {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %v", MIGRATIONHUB_POSTGRESQL_PORT, err.Error())
		}
	}
	g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_PORT] = port
	return nil
}

func (g systemInfoServiceImpl) GetPGPort() int {
	return g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_PORT].(int)
}

func (g systemInfoServiceImpl) setPGDB() {
	database := os.Getenv(MIGRATIONHUB_POSTGRESQL_DB_NAME)
	if database == "" {
		database = "migrationhub"
	}
	g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_DB_NAME] = database
}

func (g systemInfoServiceImpl) GetPGDB() string {
	return g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_DB_NAME].(string)
}

func (g systemInfoServiceImpl) setPGUser() {
	user := os.Getenv(MIGRATIONHUB_POSTGRESQL_USERNAME)
	if user == "" {
		user = "migrationhub"
	}
	g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_USERNAME] = user
}

func (g systemInfoServiceImpl) GetPGUser() string {
	return g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_USERNAME].(string)
}

func (g systemInfoServiceImpl) setPGPassword() {
	password := os.Getenv(MIGRATIONHUB_POSTGRESQL_PASSWORD)
	if password == "" {
		password = "migrationhub"
	}
	g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_PASSWORD] = password
}

func (g systemInfoServiceImpl) GetPGPassword() string {
	return g.systemInfoMap[MIGRATIONHUB_POSTGRESQL_PASSWORD].(string)
}

func (g systemInfoServiceImpl) setPGSSLMode() {
	sslMode := os.Getenv(PG_SSL_MODE)
	if sslMode == "" {
		sslMode = "disable"
	}
	g.systemInfoMap[PG_SSL_MODE] = sslMode
}

func (g systemInfoServiceImpl) GetPGSSLMode() string {
	return g.systemInfoMap[PG_SSL_MODE].(string)
}

func (g systemInfoServiceImpl) setSystemNotification() {
	g.systemInfoMap[SYSTEM_NOTIFICATION] = os.Getenv(SYSTEM_NOTIFICATION)
}

func (g systemInfoServiceImpl) getSystemNotification() string {
	return g.systemInfoMap[SYSTEM_NOTIFICATION].(string)
}

func (g systemInfoServiceImpl) setCleanupSchedule() {
	schedule := os.Getenv(CLEANUP_SCHEDULE)
	if schedule == "" {
		schedule = "0 1 * * 0" // at 01:00 AM on Sunday
	}
	g.systemInfoMap[CLEANUP_SCHEDULE] = schedule
}

func (g systemInfoServiceImpl) GetCleanupSchedule() string {
	return g.systemInfoMap[CLEANUP_SCHEDULE].(string)
}

func (g systemInfoServiceImpl) setCleanupRetention() error {
	daysStr := os.Getenv(CLEANUP_RETENTION_DAYS)
	var days int
	var err error
	if daysStr == "" {
		days = 30
	} else {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %v", CLEANUP_RETENTION_DAYS, err.Error())
		}
	}
	g.systemInfoMap[CLEANUP_RETENTION_DAYS] = time.Duration(days) * 24 * time.Hour
	return nil
}

func (g systemInfoServiceImpl) GetCleanupRetention() time.Duration {
	return g.systemInfoMap[CLEANUP_RETENTION_DAYS].(time.Duration)
}

func (g systemInfoServiceImpl) setMetricsGetterSchedule() {
	schedule := os.Getenv(METRICS_GETTER_SCHEDULE)
	if schedule == "" {
		schedule = "* * * * *" // every minute
	}
	g.systemInfoMap[METRICS_GETTER_SCHEDULE] = schedule
}

func (g systemInfoServiceImpl) GetMetricsGetterSchedule() string {
	return g.systemInfoMap[METRICS_GETTER_SCHEDULE].(string)
}

func (g systemInfoServiceImpl) setInsecureProxy() {
	envVal := os.Getenv(INSECURE_PROXY)
	insecureProxy, err := strconv.ParseBool(envVal)
	if err != nil {
		log.Infof("environment variable %v has invalid value, using false value instead", INSECURE_PROXY)
		insecureProxy = false
	}
	g.systemInfoMap[INSECURE_PROXY] = insecureProxy
}

func (s systemInfoServiceImpl) InsecureProxyEnabled() bool {
	return s.systemInfoMap[INSECURE_PROXY].(bool)
}

func (g systemInfoServiceImpl) GetMinioAccessKeyId() string {
	return g.systemInfoMap[STORAGE_SERVER_USERNAME].(string)
}

func (g systemInfoServiceImpl) setMinioAccessKeyId() {
	g.systemInfoMap[STORAGE_SERVER_USERNAME] = os.Getenv(STORAGE_SERVER_USERNAME)
}

func (g systemInfoServiceImpl) GetMinioSecretAccessKey() string {
	return g.systemInfoMap[STORAGE_SERVER_PASSWORD].(string)
}

func (g systemInfoServiceImpl) setMinioSecretAccessKey() {
	g.systemInfoMap[STORAGE_SERVER_PASSWORD] = os.Getenv(STORAGE_SERVER_PASSWORD)
}

func (g systemInfoServiceImpl) GetMinioCrt() string {
	return g.systemInfoMap[STORAGE_SERVER_CRT].(string)
}

func (g systemInfoServiceImpl) setMinioCrt() {
	g.systemInfoMap[STORAGE_SERVER_CRT] = os.Getenv(STORAGE_SERVER_CRT)
}

func (g systemInfoServiceImpl) GetMinioEndpoint() string {
	return g.systemInfoMap[STORAGE_SERVER_URL].(string)
}

func (g systemInfoServiceImpl) setMinioEndpoint() {
	g.systemInfoMap[STORAGE_SERVER_URL] = os.Getenv(STORAGE_SERVER_URL)
}

func (g systemInfoServiceImpl) GetMinioBucketName() string {
	return g.systemInfoMap[STORAGE_SERVER_BUCKET_NAME].(string)
}

func (g systemInfoServiceImpl) setMinioBucketName() {
	g.systemInfoMap[STORAGE_SERVER_BUCKET_NAME] = os.Getenv(STORAGE_SERVER_BUCKET_NAME)
}

func (g systemInfoServiceImpl) setMinioStorageActive() {
	envVal := os.Getenv(STORAGE_SERVER_ACTIVE)
	if envVal == "" {
		envVal = "false"
	}
	val, err := strconv.ParseBool(envVal)
	if err != nil {
		log.Errorf("failed to parse %v env value: %v. Value by default - false", STORAGE_SERVER_ACTIVE, err.Error())
		val = false
	}
	g.systemInfoMap[STORAGE_SERVER_ACTIVE] = val
}

func (g systemInfoServiceImpl) IsMinioStorageActive() bool {
	return g.systemInfoMap[STORAGE_SERVER_ACTIVE].(bool)
}

func (g systemInfoServiceImpl) setDatabricksTestTimeout() error {
	secStr := os.Getenv(DATABRICKS_TEST_TIMEOUT_SEC)
	var sec int
	var err error
	if secStr == "" {
		sec = 30
	} else {
		sec, err = strconv.Atoi(secStr)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %v", DATABRICKS_TEST_TIMEOUT_SEC, err.Error())
		}
	}
	g.systemInfoMap[DATABRICKS_TEST_TIMEOUT_SEC] = time.Duration(sec) * time.Second
	return nil
}

func (g systemInfoServiceImpl) GetDatabricksTestTimeout() time.Duration {
	return g.systemInfoMap[DATABRICKS_TEST_TIMEOUT_SEC].(time.Duration)
}

func (g systemInfoServiceImpl) GetZeroDayAdminCreds() (string, string, error) {
	email := os.Getenv(MIGRATIONHUB_ADMIN_EMAIL)
	password := os.Getenv(MIGRATIONHUB_ADMIN_PASSWORD)
	if email == "" || password == "" {
		return "", "", fmt.Errorf("some zero day admin envs('%s' or '%s') are empty or not set", MIGRATIONHUB_ADMIN_EMAIL, MIGRATIONHUB_ADMIN_PASSWORD)
	}
	return email, password, nil
}
