package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/metrics"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/oklog/ulid/v2"
)

const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// ObjectStore is the gateway to the remote media host. Objects live under
// <kind>/upload/<publicId>.<ext> and are addressed publicly by
// <publicURL>/<bucket>/<kind>/upload/<publicId>.<ext>.
type ObjectStore struct {
	client    minioClient
	bucket    string
	publicURL string
	probe     durationProber
	newID     func() string
}

// compile-time check: *ObjectStore must satisfy port.ObjectStore
var _ port.ObjectStore = (*ObjectStore)(nil)

func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	logger.Info(context.Background(), "initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return client, nil
}

func NewObjectStore(client minioClient, bucket, publicURL string) *ObjectStore {
	return &ObjectStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		probe:     mp4Duration,
		newID:     newPublicID,
	}
}

func newPublicID() string {
	return strings.ToLower(ulid.Make().String())
}

// InitBucket creates the media bucket when missing and makes its objects publicly readable.
func (s *ObjectStore) InitBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		logger.Infof(ctx, "bucket %q does not exist, creating it...", s.bucket)
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, fmt.Sprintf(publicReadPolicy, s.bucket)); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *ObjectStore) Upload(ctx context.Context, file *port.StagedFile, kind port.MediaKind) (res port.UploadResult, err error) {
	defer func() {
		if rmErr := file.Remove(); rmErr != nil {
			logger.Warnf(ctx, "failed to remove staged file %q: %v", file.Path, rmErr)
		}
		metrics.UploadsTotal.WithLabelValues(string(kind), metrics.Status(err)).Inc()
	}()

	if !file.Exists() {
		return port.UploadResult{}, ErrStagedFileMissing
	}

	mtype, err := mimetype.DetectFile(file.Path)
	if err != nil {
		return port.UploadResult{}, fmt.Errorf("detect content type of %q: %w", file.Filename, err)
	}
	if !strings.HasPrefix(mtype.String(), string(kind)+"/") {
		return port.UploadResult{}, fmt.Errorf("%w: %q is %s, expected %s", ErrUnsupportedContent, file.Filename, mtype.String(), kind)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return port.UploadResult{}, fmt.Errorf("open staged file %q: %w", file.Filename, err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			logger.Warnf(ctx, "failed to close staged file %q: %v", file.Path, cErr)
		}
	}()

	stat, err := f.Stat()
	if err != nil {
		return port.UploadResult{}, fmt.Errorf("stat staged file %q: %w", file.Filename, err)
	}

	var duration float64
	if kind == port.MediaKindVideo {
		d, pErr := s.probe(f)
		if pErr != nil {
			logger.Warnf(ctx, "could not read duration of %q: %v", file.Filename, pErr)
		} else {
			duration = d
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return port.UploadResult{}, fmt.Errorf("rewind staged file %q: %w", file.Filename, err)
		}
	}

	ext := mtype.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.Filename))
	}

	res, err = s.put(ctx, kind, f, stat.Size(), mtype.String(), ext)
	if err != nil {
		return port.UploadResult{}, err
	}
	res.DurationSeconds = duration
	return res, nil
}

func (s *ObjectStore) Put(ctx context.Context, kind port.MediaKind, r io.Reader, size int64, contentType string) (port.UploadResult, error) {
	return s.put(ctx, kind, r, size, contentType, extensionFor(contentType))
}

func (s *ObjectStore) put(ctx context.Context, kind port.MediaKind, r io.Reader, size int64, contentType, ext string) (port.UploadResult, error) {
	publicID := s.newID()
	key := fmt.Sprintf("%s/upload/%s%s", kind, publicID, ext)
	logger.Infof(ctx, "uploading %s %q into bucket %q...", kind, key, s.bucket)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	metrics.ObjectStoreOpsTotal.WithLabelValues("put", metrics.Status(err)).Inc()
	if err != nil {
		return port.UploadResult{}, mapMinioErr(err)
	}
	metrics.UploadBytesTotal.WithLabelValues(string(kind)).Add(float64(size))

	return port.UploadResult{
		ExternalRef: s.refFor(key),
		PublicID:    publicID,
		ContentType: contentType,
		SizeBytes:   size,
	}, nil
}

func (s *ObjectStore) Delete(ctx context.Context, publicID string, kind port.MediaKind) error {
	if publicID == "" {
		return fmt.Errorf("%w: empty public id", ErrForeignRef)
	}
	prefix := fmt.Sprintf("%s/upload/%s.", kind, publicID)
	logger.Infof(ctx, "removing objects %q from bucket %q...", prefix, s.bucket)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	removed := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			metrics.ObjectStoreOpsTotal.WithLabelValues("delete", "error").Inc()
			return mapMinioErr(obj.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			metrics.ObjectStoreOpsTotal.WithLabelValues("delete", "error").Inc()
			return mapMinioErr(err)
		}
		removed++
	}
	if removed == 0 {
		metrics.ObjectStoreOpsTotal.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("%w: %s %q", ErrRemoteObjectMissing, kind, publicID)
	}

	metrics.ObjectStoreOpsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

func (s *ObjectStore) Open(ctx context.Context, externalRef string) (io.ReadCloser, error) {
	key, err := s.keyFromRef(externalRef)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "getting object %q from bucket %q...", key, s.bucket)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	// GetObject is lazy; Stat surfaces a missing key now rather than on first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

// PublicIDFromRef strips the public URL prefix of kind and the file extension from ref.
func (s *ObjectStore) PublicIDFromRef(externalRef string, kind port.MediaKind) (string, error) {
	prefix := s.refFor(string(kind) + "/upload/")
	rest, ok := strings.CutPrefix(externalRef, prefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrForeignRef, externalRef)
	}
	publicID, _, _ := strings.Cut(rest, ".")
	if publicID == "" || strings.Contains(publicID, "/") {
		return "", fmt.Errorf("%w: %q", ErrForeignRef, externalRef)
	}
	return publicID, nil
}

func (s *ObjectStore) refFor(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

func (s *ObjectStore) keyFromRef(ref string) (string, error) {
	key, ok := strings.CutPrefix(ref, s.publicURL+"/"+s.bucket+"/")
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %q", ErrForeignRef, ref)
	}
	return key, nil
}

func extensionFor(contentType string) string {
	if contentType == "image/webp" {
		return ".webp"
	}
	if m := mimetype.Lookup(contentType); m != nil {
		return m.Extension()
	}
	return ""
}
