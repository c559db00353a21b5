package media

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
	"admin-world-client/pkg/logger"
)

const jpegQuality = 80

// UploadRequest describes one file headed for the media provider.
type UploadRequest struct {
	Preset       string
	ResourceType string
	Filename     string
	Data         []byte

	// Owner identifies the entity the asset is persisted against; when empty
	// the attach step is skipped and the caller stores the asset itself.
	OwnerType string
	OwnerID   string
}

// Uploader runs the signed-upload chain: compress, request a signature,
// upload to the provider, register the resulting URL with the backend. Each
// step is strictly sequential; a failed step aborts the chain. Compression
// runs on a dedicated worker goroutine so large files never block the caller's
// event loop.
type Uploader struct {
	repo    repository.MediaRepository
	maxEdge int
	jobs    chan compressJob
	done    chan struct{}
}

type compressJob struct {
	data   []byte
	result chan []byte
}

func NewUploader(repo repository.MediaRepository, maxEdge int) *Uploader {
	u := &Uploader{
		repo:    repo,
		maxEdge: maxEdge,
		jobs:    make(chan compressJob),
		done:    make(chan struct{}),
	}
	go u.worker()
	return u
}

func (u *Uploader) Close() {
	close(u.done)
}

func (u *Uploader) worker() {
	for {
		select {
		case job := <-u.jobs:
			job.result <- u.compress(job.data)
		case <-u.done:
			return
		}
	}
}

// Upload executes the four-step chain and returns the provider's asset
// record.
func (u *Uploader) Upload(ctx context.Context, req UploadRequest) (*models.MediaAsset, error) {
	data := req.Data
	if req.ResourceType == "image" {
		compressed, err := u.compressInBackground(ctx, data)
		if err != nil {
			return nil, err
		}
		data = compressed
	}

	sig, err := u.repo.GenerateSignature(ctx, models.GenerateSignatureRequest{
		UploadPreset: req.Preset,
		ResourceType: req.ResourceType,
	})
	if err != nil {
		return nil, err
	}

	asset, err := u.repo.UploadSigned(ctx, sig, req.Filename, data, req.ResourceType)
	if err != nil {
		return nil, err
	}

	if req.OwnerID != "" {
		attach := models.AttachAssetRequest{
			OwnerType: req.OwnerType,
			OwnerID:   req.OwnerID,
			Asset:     *asset,
		}
		if err := u.repo.AttachAsset(ctx, attach); err != nil {
			return nil, err
		}
	}

	logger.Debug("media upload complete", map[string]interface{}{
		"preset": req.Preset,
		"bytes":  asset.Bytes,
		"url":    asset.URL,
	})
	return asset, nil
}

func (u *Uploader) compressInBackground(ctx context.Context, data []byte) ([]byte, error) {
	job := compressJob{data: data, result: make(chan []byte, 1)}

	select {
	case u.jobs <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case compressed := <-job.result:
		return compressed, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// compress downscales an image to fit maxEdge and re-encodes it as JPEG.
// Anything that fails to decode passes through untouched; the provider will
// reject genuinely broken files.
func (u *Uploader) compress(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= u.maxEdge && height <= u.maxEdge {
		return reencode(img, data)
	}

	scale := float64(u.maxEdge) / float64(width)
	if height > width {
		scale = float64(u.maxEdge) / float64(height)
	}
	dstWidth := int(float64(width) * scale)
	dstHeight := int(float64(height) * scale)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	return reencode(dst, data)
}

func reencode(img image.Image, original []byte) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return original
	}
	return buf.Bytes()
}
