package visual

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/edulens/visual-explainer/internal/dto"
	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/internal/infrastructure"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, providers []infrastructure.ImageProvider, exp infrastructure.Explainer) (*VisualUseCase, *mockBlobRepo, *mockMetadataRepo) {
	t.Helper()

	blob := &mockBlobRepo{}
	metadata := &mockMetadataRepo{}

	return New(providers, exp, blob, metadata, time.Minute, nopLogger{}), blob, metadata
}

func testRequest() dto.GenerateVisualRequest {
	return dto.GenerateVisualRequest{
		Subject: "Physics",
		Topic:   "Newton's Laws",
		UserID:  "u1",
	}
}

func TestGenerate_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "openai", result: &entity.ImageResult{Data: pngBytes(t), MimeType: "image/png"}}
	second := &stubProvider{name: "gemini", result: &entity.ImageResult{URL: "https://img.example/second.png"}}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{first, second}, &mockExplainer{text: "detailed"})

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "remaining providers must not be tried after a success")
	assert.Equal(t, "openai", artifact.Provider)
}

func TestGenerate_FallsThroughToLastProvider(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("429 rate limited")}
	second := &stubProvider{name: "gemini", err: errors.New("network down")}
	third := &stubProvider{name: "ark", result: &entity.ImageResult{URL: "https://img.example/hosted.png"}}

	uc, _, metadata := newUseCase(t, []infrastructure.ImageProvider{first, second, third}, &mockExplainer{text: "detailed"})

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, "https://img.example/hosted.png", artifact.ImageURL)
	assert.Equal(t, "ark", artifact.Provider)

	require.Len(t, metadata.created, 1)
	assert.Equal(t, "https://img.example/hosted.png", metadata.created[0].ImageURL)
}

func TestGenerate_AllProvidersFailed(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("boom")}
	second := &stubProvider{name: "gemini", err: errors.New("crash")}

	uc, blob, metadata := newUseCase(t, []infrastructure.ImageProvider{first, second}, &mockExplainer{text: "detailed"})

	_, err := uc.Generate(context.Background(), testRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAllProvidersFailed)
	assert.Empty(t, blob.uploadedKeys, "no partial writes on terminal failure")
	assert.Empty(t, metadata.created, "no partial writes on terminal failure")
}

func TestGenerate_NoProvidersConfigured(t *testing.T) {
	uc, _, _ := newUseCase(t, nil, &mockExplainer{text: "detailed"})

	_, err := uc.Generate(context.Background(), testRequest())

	assert.ErrorIs(t, err, errs.ErrAllProvidersFailed)
}

func TestGenerate_UndecodablePayloadAdvancesChain(t *testing.T) {
	first := &stubProvider{name: "openai", result: &entity.ImageResult{Data: []byte("not an image"), MimeType: "image/png"}}
	second := &stubProvider{name: "gemini", result: &entity.ImageResult{URL: "https://img.example/ok.png"}}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{first, second}, &mockExplainer{text: "detailed"})

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, "gemini", artifact.Provider)
	assert.Equal(t, "https://img.example/ok.png", artifact.ImageURL)
}

func TestGenerate_EmptyResultAdvancesChain(t *testing.T) {
	first := &stubProvider{name: "openai", result: &entity.ImageResult{}}
	second := &stubProvider{name: "gemini", result: &entity.ImageResult{URL: "https://img.example/ok.png"}}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{first, second}, &mockExplainer{text: "detailed"})

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "gemini", artifact.Provider)
}

func TestGenerate_InlineImageUploaded(t *testing.T) {
	p := &stubProvider{name: "openai", result: &entity.ImageResult{Data: pngBytes(t), MimeType: "image/png"}}

	uc, blob, metadata := newUseCase(t, []infrastructure.ImageProvider{p}, &mockExplainer{text: "detailed"})

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, blob.uploadedKeys, 1)
	assert.Equal(t, "generated/"+artifact.ID.String()+".png", blob.uploadedKeys[0])
	assert.True(t, strings.HasPrefix(artifact.ImageURL, testBlobBaseURL), "image reference must be a blob store URL, got %q", artifact.ImageURL)
	assert.Equal(t, 2, artifact.Width)
	assert.Equal(t, 3, artifact.Height)

	require.Len(t, metadata.created, 1)
	assert.Equal(t, "Physics", metadata.created[0].Subject)
	assert.Equal(t, "Newton's Laws", metadata.created[0].Topic)
	assert.Equal(t, "u1", metadata.created[0].UserID)
	assert.False(t, metadata.created[0].CreatedAt.IsZero())
}

func TestGenerate_UploadFailureFallsBackToDataURI(t *testing.T) {
	p := &stubProvider{name: "openai", result: &entity.ImageResult{Data: pngBytes(t), MimeType: "image/png"}}

	uc, blob, metadata := newUseCase(t, []infrastructure.ImageProvider{p}, &mockExplainer{text: "detailed"})
	blob.uploadErr = errors.New("bucket unavailable")

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err, "blob upload failure must not fail the request")
	assert.True(t, strings.HasPrefix(artifact.ImageURL, "data:image/png;base64,"), "expected data URI fallback, got %q", artifact.ImageURL)

	require.Len(t, metadata.created, 1)
	assert.Equal(t, artifact.ImageURL, metadata.created[0].ImageURL)
}

func TestGenerate_MetadataFailureStillSucceeds(t *testing.T) {
	p := &stubProvider{name: "ark", result: &entity.ImageResult{URL: "https://img.example/hosted.png"}}

	uc, _, metadata := newUseCase(t, []infrastructure.ImageProvider{p}, &mockExplainer{text: "detailed"})
	metadata.createErr = errors.New("connection refused")

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err, "persistence is best effort")
	assert.Equal(t, "https://img.example/hosted.png", artifact.ImageURL)
	assert.Equal(t, "detailed", artifact.Explanation)
}

func TestGenerate_ExplanationFromExplainer(t *testing.T) {
	p := &stubProvider{name: "ark", result: &entity.ImageResult{URL: "https://img.example/hosted.png"}}
	exp := &mockExplainer{text: "A thorough explanation."}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{p}, exp)

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, exp.calls)
	assert.Equal(t, "A thorough explanation.", artifact.Explanation)
}

func TestGenerate_ExplanationFallbackOnError(t *testing.T) {
	p := &stubProvider{name: "ark", result: &entity.ImageResult{URL: "https://img.example/hosted.png"}}
	exp := &mockExplainer{err: errors.New("model overloaded")}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{p}, exp)

	req := dto.GenerateVisualRequest{Subject: "Biology", Topic: "Photosynthesis", UserID: "u1"}
	artifact, err := uc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t,
		"This image shows an educational illustration about Photosynthesis in the context of Biology.",
		artifact.Explanation)
}

func TestGenerate_ExplanationFallbackWithoutExplainer(t *testing.T) {
	p := &stubProvider{name: "ark", result: &entity.ImageResult{URL: "https://img.example/hosted.png"}}

	uc, _, _ := newUseCase(t, []infrastructure.ImageProvider{p}, nil)

	artifact, err := uc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t,
		"This image shows an educational illustration about Newton's Laws in the context of Physics.",
		artifact.Explanation)
}
