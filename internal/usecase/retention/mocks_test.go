package retention

import (
	"context"
	"strings"
	"time"

	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/google/uuid"
)

const testBlobBaseURL = "https://blob.test/artifacts/"

type mockBlobRepo struct {
	deletedKeys []string
	deleteErr   map[string]error
}

func (r *mockBlobRepo) UploadBytes(_ context.Context, key string, _ []byte, _ string) (string, error) {
	return testBlobBaseURL + key, nil
}

func (r *mockBlobRepo) Delete(_ context.Context, key string) error {
	if err, ok := r.deleteErr[key]; ok {
		return err
	}
	r.deletedKeys = append(r.deletedKeys, key)
	return nil
}

func (r *mockBlobRepo) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, testBlobBaseURL)
	return key, ok && key != ""
}

type mockMetadataRepo struct {
	refs    []entity.ArtifactRef
	listErr error

	listCutoffs   []time.Time
	deleteCutoffs []time.Time

	deleted   int64
	deleteErr error
}

func (r *mockMetadataRepo) Create(_ context.Context, _ *entity.Artifact) error { return nil }

func (r *mockMetadataRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Artifact, error) {
	return nil, nil
}

func (r *mockMetadataRepo) ListOlderThan(_ context.Context, cutoff time.Time) ([]entity.ArtifactRef, error) {
	r.listCutoffs = append(r.listCutoffs, cutoff)
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.refs, nil
}

func (r *mockMetadataRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.deleteCutoffs = append(r.deleteCutoffs, cutoff)
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return r.deleted, nil
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})       {}
func (nopLogger) Warn(string, ...interface{})       {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}
