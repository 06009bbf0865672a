package persistent

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/edulens/visual-explainer/pkg/s3client"
)

type ArtifactBlobRepo struct {
	*s3client.S3Client
	bucket        string
	publicBaseURL string
}

func NewArtifactBlobRepo(s3c *s3client.S3Client, bucket, publicBaseURL string) *ArtifactBlobRepo {
	return &ArtifactBlobRepo{s3c, bucket, strings.TrimRight(publicBaseURL, "/")}
}

func (r *ArtifactBlobRepo) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	b := bytes.NewReader(data)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          b,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("ArtifactBlobRepo - UploadBytes - r.Client.PutObject: %w", err)
	}

	return r.urlFor(key), nil
}

func (r *ArtifactBlobRepo) Delete(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ArtifactBlobRepo - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}

func (r *ArtifactBlobRepo) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, r.urlFor(""))
	return key, ok && key != ""
}

func (r *ArtifactBlobRepo) urlFor(key string) string {
	return fmt.Sprintf("%s/%s/%s", r.publicBaseURL, r.bucket, key)
}
