package blob

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azblobblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	"ard/internal/structures"
)

// Client is one Azure Blob Storage container. Retries are left to the SDK's
// default pipeline.
type Client struct {
	container *container.Client
}

func ServiceURL(conf *structures.Config) string {
	if conf.Storage.ServiceURL != "" {
		return conf.Storage.ServiceURL
	}
	return fmt.Sprintf("https://%s.blob.core.windows.net/", conf.Storage.AccountName)
}

func NewClient(conf *structures.Config) (*Client, error) {
	cred, err := azblob.NewSharedKeyCredential(conf.Storage.AccountName, conf.Storage.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("blob: invalid shared key: %w", err)
	}

	svc, err := service.NewClientWithSharedKeyCredential(ServiceURL(conf), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("blob: create service client: %w", err)
	}

	return &Client{container: svc.NewContainerClient(conf.Storage.Container)}, nil
}

func (c *Client) Exists(ctx context.Context) (bool, error) {
	_, err := c.container.GetProperties(ctx, nil)
	if err == nil {
		return true, nil
	}
	if bloberror.HasCode(err, bloberror.ContainerNotFound) {
		return false, nil
	}
	return false, err
}

// Create makes the container with anonymous read access to blobs only.
// Losing a creation race to another writer counts as success.
func (c *Client) Create(ctx context.Context) error {
	access := container.PublicAccessTypeBlob
	_, err := c.container.Create(ctx, &container.CreateOptions{Access: &access})
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return err
	}
	return nil
}

func (c *Client) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := c.container.NewBlockBlobClient(name).UploadBuffer(ctx, data, &blockblob.UploadBufferOptions{
		HTTPHeaders: &azblobblob.HTTPHeaders{BlobContentType: &contentType},
	})
	return err
}

func (c *Client) URL() string {
	return c.container.URL()
}
