package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// AzureSource implements Source over an Azure Blob Storage container.
type AzureSource struct {
	client    *azblob.Client
	container string
	logger    *slog.Logger
}

var _ Source = (*AzureSource)(nil)

// NewAzureSource connects to Azure Blob Storage using a connection string.
//
// Returns Source interface to enforce abstraction.
func NewAzureSource(connectionString, container string) (Source, error) {
	if connectionString == "" {
		return nil, ErrConnectionStringRequired
	}
	if container == "" {
		return nil, ErrContainerRequired
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to blob storage: %w", err)
	}

	return &AzureSource{
		client:    client,
		container: container,
		logger:    slog.Default().With("component", "blob-source", "container", container),
	}, nil
}

// List returns the PDF blobs in the container.
func (s *AzureSource) List(ctx context.Context) ([]Object, error) {
	var objects []Object

	pager := s.client.NewListBlobsFlatPager(s.container, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing blobs in %s: %w", s.container, err)
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			obj := Object{Name: *item.Name}
			if item.Properties != nil && item.Properties.ETag != nil {
				obj.ETag = string(*item.Properties.ETag)
			}
			objects = append(objects, obj)
		}
	}

	pdfs := FilterPDFs(objects)
	s.logger.Debug("listed container", "blobs", len(objects), "pdfs", len(pdfs))
	return pdfs, nil
}

// Download fetches the raw bytes of a blob.
func (s *AzureSource) Download(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, name, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading blob %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", name, err)
	}
	return data, nil
}
