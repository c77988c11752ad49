package pinning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"landapi/internal/config"
)

const providerFilebase = "filebase"

// objectAPI is the part of *minio.Client used for pinning.
type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// minioAPI narrows *minio.Client's io.Reader parameter to *bytes.Reader.
type minioAPI struct {
	client *minio.Client
}

func (m minioAPI) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.client.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (m minioAPI) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.client.StatObject(ctx, bucketName, objectName, opts)
}

// Filebase pins files by writing them into a Filebase IPFS bucket through
// its S3-compatible API. Filebase reports the CID as object metadata.
type Filebase struct {
	api    objectAPI
	bucket string
}

// NewFilebase creates a Filebase pinner. The bucket must already exist and
// be configured for IPFS storage.
func NewFilebase(cfg config.FilebaseConfig) (*Filebase, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("filebase endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("filebase credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("filebase bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("create filebase client: %w", err)
	}

	return &Filebase{api: minioAPI{client: cli}, bucket: cfg.Bucket}, nil
}

var _ Pinner = (*Filebase)(nil)

// Pin uploads data under a unique key and reads back the CID.
func (f *Filebase) Pin(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	key := objectKey(fileName)

	_, err := f.api.PutObject(ctx, f.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-filename": fileName,
		},
	})
	if err != nil {
		return "", s3Error("put", err)
	}

	info, err := f.api.StatObject(ctx, f.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return "", s3Error("stat", err)
	}

	c := cidFromInfo(info)
	if err := validateCID(c); err != nil {
		return "", &Error{Provider: providerFilebase, Op: "stat", Err: err}
	}
	return c, nil
}

func objectKey(fileName string) string {
	base := path.Base(fileName)
	if base == "." || base == "/" {
		base = "file"
	}
	return uuid.NewString() + "-" + base
}

func cidFromInfo(info minio.ObjectInfo) string {
	for _, k := range []string{"Cid", "cid"} {
		if v := info.UserMetadata[k]; v != "" {
			return v
		}
	}
	return info.Metadata.Get("X-Amz-Meta-Cid")
}

// s3Error keeps only the S3 error code and status, never the response body.
func s3Error(op string, err error) *Error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" {
		return &Error{Provider: providerFilebase, Op: op, Err: err}
	}
	return &Error{Provider: providerFilebase, Op: op, Status: resp.StatusCode, Err: errors.New(resp.Code)}
}
