package visual

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/google/uuid"
)

const testBlobBaseURL = "https://blob.test/artifacts/"

type stubProvider struct {
	name   string
	result *entity.ImageResult
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(_ context.Context, _ string) (*entity.ImageResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

type mockBlobRepo struct {
	uploadedKeys []string
	uploadErr    error

	deletedKeys []string
	deleteErr   error
}

func (r *mockBlobRepo) UploadBytes(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if r.uploadErr != nil {
		return "", r.uploadErr
	}
	r.uploadedKeys = append(r.uploadedKeys, key)
	return testBlobBaseURL + key, nil
}

func (r *mockBlobRepo) Delete(_ context.Context, key string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedKeys = append(r.deletedKeys, key)
	return nil
}

func (r *mockBlobRepo) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, testBlobBaseURL)
	return key, ok && key != ""
}

type mockMetadataRepo struct {
	created   []*entity.Artifact
	createErr error

	refs      []entity.ArtifactRef
	listErr   error
	cutoffs   []time.Time
	deleted   int64
	deleteErr error
}

func (r *mockMetadataRepo) Create(_ context.Context, artifact *entity.Artifact) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, artifact)
	return nil
}

func (r *mockMetadataRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Artifact, error) {
	for _, a := range r.created {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("not created in this test")
}

func (r *mockMetadataRepo) ListOlderThan(_ context.Context, cutoff time.Time) ([]entity.ArtifactRef, error) {
	r.cutoffs = append(r.cutoffs, cutoff)
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.refs, nil
}

func (r *mockMetadataRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.cutoffs = append(r.cutoffs, cutoff)
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return r.deleted, nil
}

type mockExplainer struct {
	text  string
	err   error
	calls int
}

func (e *mockExplainer) Explain(_ context.Context, _, _ string) (string, error) {
	e.calls++
	if e.err != nil {
		return "", e.err
	}
	return e.text, nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

// pngBytes returns a minimal valid PNG payload with known dimensions.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 3))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
