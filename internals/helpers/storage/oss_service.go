package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSService wraps the Aliyun OSS SDK. Buckets map to top-level
// directories inside one OSS bucket so one credential set covers both.
type OSSService struct {
	client     *oss.Client
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	baseURL    string // optional CDN/custom domain override
}

func getenv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewOSSServiceFromEnv builds the client from OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET, OSS_BUCKET and optional OSS_PUBLIC_BASE_URL.
func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getenv("OSS_ENDPOINT")
	keyID := getenv("OSS_ACCESS_KEY_ID")
	keySecret := getenv("OSS_ACCESS_KEY_SECRET")
	bucketName := getenv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("oss: missing OSS_ENDPOINT / OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET / OSS_BUCKET")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: init client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: open bucket %s: %w", bucketName, err)
	}

	return &OSSService{
		client:     client,
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		baseURL:    strings.TrimRight(getenv("OSS_PUBLIC_BASE_URL"), "/"),
	}, nil
}

// BuildObjectKey yields "<unix-ms>-<random>.<ext>", keeping the original
// extension of the uploaded file.
func BuildObjectKey(filename string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
	if ext != "" {
		key += "." + strings.ToLower(ext)
	}
	return key
}

// PublicURL derives the public URL for an object key.
func (s *OSSService) PublicURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.baseURL != "" {
		return s.baseURL + "/" + key
	}
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, host, key)
}

func (s *OSSService) Upload(ctx context.Context, bucket string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", errors.New("oss: nil file header")
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("oss: open upload: %w", err)
	}
	defer f.Close()

	key := bucket + "/" + BuildObjectKey(fh.Filename)

	opts := []oss.Option{oss.WithContext(ctx)}
	if ct := strings.TrimSpace(fh.Header.Get("Content-Type")); ct != "" {
		opts = append(opts, oss.ContentType(ct))
	}
	if err := s.bucket.PutObject(key, f, opts...); err != nil {
		return "", "", fmt.Errorf("oss: put %s: %w", key, err)
	}
	return s.PublicURL(key), key, nil
}
