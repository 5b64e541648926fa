package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/airstat-org/airstat/emissions"
)

// ============================================================================
// SOURCES — Where datasets live
// ============================================================================
// A Source hands out raw CSV bytes by name. The loader does not care whether
// the bytes come from disk, memory, or an object store.
// ============================================================================

const (
	StorageModeLocal  = "local"
	StorageModeMemory = "memory"
	StorageModeS3     = "s3"
)

// Source provides read access to stored datasets.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// SourceFromEnv creates a source based on environment variables.
// AIRSTAT_STORAGE_MODE selects local (default), memory, or s3.
func SourceFromEnv(ctx context.Context) (Source, error) {
	mode := strings.ToLower(getEnvOrDefault("AIRSTAT_STORAGE_MODE", StorageModeLocal))

	switch mode {
	case StorageModeS3:
		cfg := S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          getEnvOrDefault("S3_REGION", "us-east-1"),
			BucketName:      os.Getenv("S3_BUCKET_NAME"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		}
		if cfg.BucketName == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewS3Source(ctx, cfg)
	case StorageModeMemory:
		return NewMemorySource(), nil
	case StorageModeLocal:
		base := getEnvOrDefault("AIRSTAT_STORAGE_PATH", ".")
		return NewLocalSource(base), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, memory, s3)", mode)
	}
}

// Load opens a named dataset from a source and parses it into a TableView.
func Load(ctx context.Context, src Source, name string) (emissions.TableView, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", name, err)
	}
	return ParseCSVView(data)
}

// ============================================================================
// LOCAL SOURCE — base-directory rooted files
// ============================================================================

// LocalSource reads datasets from a base directory on disk.
type LocalSource struct {
	base string
}

// NewLocalSource creates a source rooted at the given directory.
func NewLocalSource(base string) *LocalSource {
	return &LocalSource{base: base}
}

func (s *LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.base, name))
}

// ============================================================================
// MEMORY SOURCE — fixtures and tests
// ============================================================================

// MemorySource serves datasets from an in-memory map.
type MemorySource struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{files: make(map[string][]byte)}
}

// Put stores dataset bytes under a name, replacing any previous content.
func (s *MemorySource) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = data
}

func (s *MemorySource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found", name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
