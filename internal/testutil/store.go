package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/storage"
	"github.com/minio/minio-go/v7"
)

// MinIOConn addresses a running MinIO server.
type MinIOConn struct {
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewTestStore returns an object store on a fresh bucket, emptied and removed when the test ends.
// The raw client is returned so tests can inspect the bucket.
func NewTestStore(t *testing.T, conn MinIOConn) (*storage.ObjectStore, *minio.Client, string) {
	t.Helper()
	ctx := context.Background()

	client, err := storage.NewMinioClient(conn.Endpoint, conn.AccessKey, conn.SecretKey, false)
	if err != nil {
		t.Fatalf("could not create minio client: %v", err)
	}

	bucket := fmt.Sprintf("videotube-%d", time.Now().UnixNano())
	strg := storage.NewObjectStore(client, bucket, "http://"+conn.Endpoint)
	if err := strg.InitBucket(ctx); err != nil {
		t.Fatalf("init bucket %q: %v", bucket, err)
	}

	t.Cleanup(func() {
		for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				break
			}
			_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, bucket); err != nil {
			t.Logf("remove bucket %q: %v", bucket, err)
		}
	})
	return strg, client, bucket
}

// ObjectCount counts the objects stored under prefix.
func ObjectCount(t *testing.T, client *minio.Client, bucket, prefix string) int {
	t.Helper()
	n := 0
	for obj := range client.ListObjects(context.Background(), bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			t.Fatalf("list objects: %v", obj.Err)
		}
		n++
	}
	return n
}
