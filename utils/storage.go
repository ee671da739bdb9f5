package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage persists ticket attachments. With S3-compatible credentials
// configured it uploads to object storage and returns a CDN URL; otherwise
// it writes under a local uploads directory served at /uploads.
type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string

	localDir string
}

// NewObjectStorage builds object-backed storage against any S3-compatible
// endpoint (S3 itself, Cloudflare R2, MinIO).
func NewObjectStorage(endpoint, accessKeyID, accessKeySecret, bucket, cdnBaseURL string) (*Storage, error) {
	if cdnBaseURL == "" {
		cdnBaseURL = endpoint + "/" + bucket
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &Storage{client: client, bucket: bucket, baseURL: cdnBaseURL}, nil
}

// NewLocalStorage builds disk-backed storage rooted at dir.
func NewLocalStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to ensure upload dir: %w", err)
	}
	return &Storage{localDir: dir}, nil
}

// Save stores a multipart file under key and returns its public URL.
func (st *Storage) Save(fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if st.client == nil {
		return st.saveLocal(file, key)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err = st.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(st.bucket),
		Key:         aws.String(key),
		Body:        buf,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return fmt.Sprintf("%s/%s", st.baseURL, key), nil
}

func (st *Storage) saveLocal(src multipart.File, key string) (string, error) {
	path := filepath.Join(st.localDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload subdir: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return "/uploads/" + key, nil
}
