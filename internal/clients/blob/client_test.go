package blob

import (
	"encoding/base64"
	"testing"

	"ard/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageConfig(serviceURL string) *structures.Config {
	return &structures.Config{
		Storage: structures.StorageConfig{
			AccountName: "ardcharts",
			AccountKey:  base64.StdEncoding.EncodeToString([]byte("not-a-real-key")),
			ServiceURL:  serviceURL,
			Container:   "charts",
		},
	}
}

func TestServiceURL_DefaultsToAccountEndpoint(t *testing.T) {
	assert.Equal(t, "https://ardcharts.blob.core.windows.net/", ServiceURL(storageConfig("")))
}

func TestServiceURL_Override(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:10000/devstoreaccount1", ServiceURL(storageConfig("http://127.0.0.1:10000/devstoreaccount1")))
}

func TestNewClient_ContainerURL(t *testing.T) {
	c, err := NewClient(storageConfig(""))
	require.NoError(t, err)
	assert.Equal(t, "https://ardcharts.blob.core.windows.net/charts", c.URL())
}

func TestNewClient_InvalidKey(t *testing.T) {
	conf := storageConfig("")
	conf.Storage.AccountKey = "%%%not base64%%%"
	_, err := NewClient(conf)
	assert.Error(t, err)
}
