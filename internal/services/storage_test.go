package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) StorageService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:           "auto",
		BaseEndpoint:     aws.String(srv.URL),
		UsePathStyle:     true,
		Credentials:      credentials.NewStaticCredentialsProvider("access", "secret", ""),
		RetryMaxAttempts: 1,
	})

	return newStorageService(client, "resumes", time.Millisecond)
}

func TestStorageDownload(t *testing.T) {
	var gotPath string
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	})

	data, err := storage.Download(context.Background(), "uploads/cv.pdf")

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
	assert.Equal(t, "/resumes/uploads/cv.pdf", gotPath)
	assert.Equal(t, "resumes", storage.Bucket())
}

func TestStorageDownload_RetriesServerErrors(t *testing.T) {
	var hits int32
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := storage.Download(context.Background(), "cv.pdf")

	require.Error(t, err)
	assert.Equal(t, int32(downloadAttempts), atomic.LoadInt32(&hits))
}

func TestStorageDownload_MissingKeyIsNotRetried(t *testing.T) {
	var hits int32
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
	})

	_, err := storage.Download(context.Background(), "missing.pdf")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "NoSuchKey"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
