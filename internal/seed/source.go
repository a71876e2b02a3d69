package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"competency_backend/internal/config"
	"competency_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source 定义种子文件来源接口
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalSource 从本地目录读取种子文件
type LocalSource struct {
	Dir string
}

func (s *LocalSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name))
}

// MinioSource 从 MinIO 桶中读取种子文件
type MinioSource struct {
	client *minio.Client
	bucket string
}

func (s *MinioSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 延迟拉取，Stat 提前暴露对象不存在类错误
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// NewSource 按配置构造种子文件来源，默认读本地目录
func NewSource(cfg *config.SeedConfig) (Source, error) {
	switch cfg.Source {
	case util.StorageMinio:
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio client: %w", err)
		}
		return &MinioSource{client: client, bucket: cfg.MinioBucket}, nil
	case util.StorageLocal, "":
		return &LocalSource{Dir: cfg.Dir}, nil
	default:
		return nil, fmt.Errorf("unknown seed source type: %s", cfg.Source)
	}
}
