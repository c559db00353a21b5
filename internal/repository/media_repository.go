package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

// MediaRepository covers both sides of the signed-upload flow: signature and
// asset registration go to the backend, the file itself goes straight to the
// media provider's signed endpoint.
type MediaRepository interface {
	GenerateSignature(ctx context.Context, req models.GenerateSignatureRequest) (*models.UploadSignature, error)
	UploadSigned(ctx context.Context, sig *models.UploadSignature, filename string, data []byte, resourceType string) (*models.MediaAsset, error)
	AttachAsset(ctx context.Context, req models.AttachAssetRequest) error
}

type mediaRepository struct {
	client    *api.Client
	provider  *resty.Client
	uploadURL string
}

func NewMediaRepository(client *api.Client, uploadURL string, timeout time.Duration) MediaRepository {
	return &mediaRepository{
		client:    client,
		provider:  resty.New().SetTimeout(timeout),
		uploadURL: uploadURL,
	}
}

func (r *mediaRepository) GenerateSignature(ctx context.Context, req models.GenerateSignatureRequest) (*models.UploadSignature, error) {
	var sig models.UploadSignature
	if _, err := r.client.Post(ctx, "/generate/generateSignature", req, &sig); err != nil {
		return nil, err
	}
	return &sig, nil
}

// providerResponse is the media provider's own payload shape, which does not
// use the backend envelope.
type providerResponse struct {
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
	Bytes        int64  `json:"bytes"`
}

func (r *mediaRepository) UploadSigned(ctx context.Context, sig *models.UploadSignature, filename string, data []byte, resourceType string) (*models.MediaAsset, error) {
	resp, err := r.provider.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"api_key":       sig.APIKey,
			"timestamp":     strconv.FormatInt(sig.Timestamp, 10),
			"signature":     sig.Signature,
			"upload_preset": sig.Preset,
			"resource_type": resourceType,
		}).
		Post(r.uploadURL)
	if err != nil {
		return nil, api.NewNetworkError(err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, api.NewServerError(resp.StatusCode(), "media upload rejected")
	}

	var payload providerResponse
	if jsonErr := json.Unmarshal(resp.Body(), &payload); jsonErr != nil {
		return nil, api.NewBadResponseError(jsonErr)
	}

	return &models.MediaAsset{
		URL:          payload.SecureURL,
		PublicID:     payload.PublicID,
		Format:       payload.Format,
		ResourceType: payload.ResourceType,
		Bytes:        payload.Bytes,
	}, nil
}

func (r *mediaRepository) AttachAsset(ctx context.Context, req models.AttachAssetRequest) error {
	_, err := r.client.Post(ctx, "/media/attachAsset", req, nil)
	return err
}
