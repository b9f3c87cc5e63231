//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mediastore_test
package mediastore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}
