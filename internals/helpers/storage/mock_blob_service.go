package storage

import (
	"context"
	"mime/multipart"
	"sync"
)

// MockBlobService records uploads in memory. Test double for BlobService.
type MockBlobService struct {
	mu      sync.Mutex
	Err     error
	Uploads []MockUpload
}

type MockUpload struct {
	Bucket   string
	Filename string
	Key      string
}

func (m *MockBlobService) Upload(_ context.Context, bucket string, fh *multipart.FileHeader) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", "", m.Err
	}
	key := bucket + "/" + BuildObjectKey(fh.Filename)
	m.Uploads = append(m.Uploads, MockUpload{Bucket: bucket, Filename: fh.Filename, Key: key})
	return "https://cdn.test.local/" + key, key, nil
}
