package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const photoPrefix = "photos"

type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

// MediaStore складывает фото осмотра в S3-совместимое хранилище и возвращает
// публичные ссылки. В черновике и в перевозке хранятся только ссылки,
// бинарники сервис через себя не проксирует.
type MediaStore struct {
	store         objectStore
	bucket        string
	publicBaseURL string
}

func New(store objectStore, bucket, publicBaseURL string) *MediaStore {
	return &MediaStore{
		store:         store,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// NewClient собирает S3-клиент под кастомный endpoint: подходит и для AWS,
// и для R2/minio.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load media store config: %w", err)
	}

	return s3.NewFromConfig(awsCfg), nil
}

// UploadPhoto загружает фото и возвращает публичный URL. Ключ генерируется
// сервером: имя файла от клиента в ключ не попадает.
func (m *MediaStore) UploadPhoto(ctx context.Context, contentType string, data []byte) (string, error) {
	ext := extensionFor(contentType)
	if ext == "" {
		return "", fmt.Errorf("unsupported photo content type: %s", contentType)
	}

	key := path.Join(photoPrefix, uuid.NewString()+ext)

	_, err := m.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("gateway mediastore, upload photo: %w", err)
	}

	return m.publicBaseURL + "/" + key, nil
}

// DeletePhoto удаляет фото по публичной ссылке.
func (m *MediaStore) DeletePhoto(ctx context.Context, fileURL string) error {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("gateway mediastore, invalid file url: %w", err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	_, err = m.store.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("gateway mediastore, delete photo: %w", err)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
