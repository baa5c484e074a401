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
	"bytes"
	"context"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/utils"
	"github.com/Netcracker/qubership-migrationhub-backend/qubership-migrationhub-service/view"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

type MinioStorageService interface {
	CreateBucketIfNotExists(ctx context.Context) error
	GetFile(ctx context.Context, tableName, entityId string) ([]byte, error)
	UploadFile(ctx context.Context, tableName, entityId string, content []byte) error
	RemoveFile(ctx context.Context, tableName, entityId string) error
	RemoveFiles(ctx context.Context, tableName string, entityIds []string) error
}

func NewMinioStorageService(creds *view.MinioStorageCreds) MinioStorageService {
	return &minioStorageServiceImpl{
		minioClient: createMinioClient(creds),
		creds:       creds,
	}
}

type minioStorageServiceImpl struct {
	minioClient *minioClient
	creds       *view.MinioStorageCreds
}

type minioClient struct {
	client *minio.Client
	error  error
}

func (m minioStorageServiceImpl) CreateBucketIfNotExists(ctx context.Context) error {
	if m.minioClient.error != nil {
		return m.minioClient.error
	}
	exists, err := bucketExists(ctx, m.minioClient.client, m.creds.BucketName)
	if err != nil {
		return err
	}
	if exists {
		log.Infof(fmt.Sprintf("Minio bucket - %s exists", m.creds.BucketName))
	} else {
		err = m.minioClient.client.MakeBucket(ctx, m.creds.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
		exists, err = bucketExists(ctx, m.minioClient.client, m.creds.BucketName)
		if err != nil {
			return err
		}
		if exists {
			log.Infof(fmt.Sprintf("Minio bucket - %s was created", m.creds.BucketName))
		}
	}
	return nil
}

func createMinioClient(creds *view.MinioStorageCreds) *minioClient {
	client := new(minioClient)
	var err error
	tr, err := minio.DefaultTransport(true)
	if err != nil {
		log.Warnf("error creating the minio connection: error creating the default transport layer: %v", err)
		client.error = err
		return client
	}
	crt, err := os.CreateTemp("", "minio.cert")
	if err != nil {
		log.Warn(err.Error())
		client.error = err
		return client
	}
	decodedCert, err := base64.StdEncoding.DecodeString(creds.Crt)
	if err != nil {
		log.Warn(err.Error())
		client.error = err
		return client
	}

	_, err = crt.WriteString(string(decodedCert))
	rootCAs := mustGetSystemCertPool()
	data, err := os.ReadFile(crt.Name())
	if err == nil {
		rootCAs.AppendCertsFromPEM(data)
	}
	tr.TLSClientConfig.RootCAs = rootCAs

	minioClient, err := minio.New(creds.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(creds.AccessKeyId, creds.SecretAccessKey, ""),
		Secure:    true,
		Transport: tr,
	})
	if err != nil {
		if strings.Contains(err.Error(), "endpoint") {
			err = errors.New("invalid storage URL")
		}
		log.Warn(err.Error())
		client.error = err
		return client
	}
	log.Infof("MINIO instance initialized")
	client.client = minioClient
	return client
}

func (m minioStorageServiceImpl) UploadFile(ctx context.Context, tableName, entityId string, content []byte) error {
	if m.minioClient.error != nil {
		return m.minioClient.error
	}
	return m.putObject(ctx, buildFileName(tableName, entityId), content)
}

func (m minioStorageServiceImpl) putObject(ctx context.Context, fileName string, content []byte) error {
	_, err := m.minioClient.client.PutObject(ctx, m.creds.BucketName, fileName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{})
	if err != nil {
		return err
	}
	return nil
}

func (m minioStorageServiceImpl) GetFile(ctx context.Context, tableName, entityId string) ([]byte, error) {
	if m.minioClient.error != nil {
		return nil, m.minioClient.error
	}
	return m.getFile(ctx, buildFileName(tableName, entityId))
}

// fullFileName - tableName/entity_id.zip
func (m minioStorageServiceImpl) getFile(ctx context.Context, fullFileName string) ([]byte, error) {
	minioObject, err := m.minioClient.client.GetObject(ctx, m.creds.BucketName, fullFileName, minio.GetObjectOptions{})
	if err != nil {
		log.Warn(err)
		return nil, err
	}
	minioObjectContent, err := io.ReadAll(minioObject)
	return minioObjectContent, err
}

func (m minioStorageServiceImpl) RemoveFile(ctx context.Context, tableName, entityId string) error {
	if m.minioClient.error != nil {
		return m.minioClient.error
	}
	return m.removeFile(ctx, buildFileName(tableName, entityId))
}

func (m minioStorageServiceImpl) RemoveFiles(ctx context.Context, tableName string, entityIds []string) error {
	if m.minioClient.error != nil {
		return m.minioClient.error
	}
	minioObjectsChan := make(chan minio.ObjectInfo, len(entityIds))
	utils.SafeAsync(func() {
		for _, id := range entityIds {
			minioObjectsChan <- minio.ObjectInfo{Key: buildFileName(tableName, id)}
		}
		defer close(minioObjectsChan)
	})
	errMsg := make([]string, 0)
	errChan := m.minioClient.client.RemoveObjects(ctx, m.creds.BucketName, minioObjectsChan, minio.RemoveObjectsOptions{})
	for removeError := range errChan {
		errMsg = append(errMsg, removeError.Err.Error())
	}
	if len(errMsg) > 0 {
		return errors.New(strings.Join(errMsg, ". "))
	}
	return nil
}

func (m minioStorageServiceImpl) removeFile(ctx context.Context, fileName string) error {
	err := m.minioClient.client.RemoveObject(ctx, m.creds.BucketName, fileName, minio.RemoveObjectOptions{})
	if err != nil {
		return err
	}
	return nil
}

func bucketExists(ctx context.Context, minioClient *minio.Client, bucketName string) (bool, error) {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func mustGetSystemCertPool() *x509.CertPool {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return x509.NewCertPool()
	}
	return pool
}

func buildFileName(tableName, entityId string) string {
	return fmt.Sprintf("%s/%s.zip", tableName, entityId)
}
