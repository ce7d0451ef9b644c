package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryAssetStore uploads ticket assets to Cloudinary and returns the
// secure delivery URL.
type CloudinaryAssetStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryAssetStore initializes a Cloudinary-backed asset store.
func NewCloudinaryAssetStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryAssetStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryAssetStore{client: cld, folder: folder}, nil
}

func (s *CloudinaryAssetStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	// PDFs must go up as raw assets; Cloudinary treats everything else here
	// as an image.
	resourceType := "image"
	if strings.HasSuffix(name, ".pdf") {
		resourceType = "raw"
	}

	resp, err := s.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     strings.TrimSuffix(name, ".pdf"),
		Folder:       s.folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.SecureURL, nil
}
