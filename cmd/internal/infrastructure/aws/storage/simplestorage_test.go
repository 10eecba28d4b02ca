package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	s := &storageClient{bucket: "b", baseURL: "https://cdn.example.com"}
	assert.Equal(t, "https://cdn.example.com/contratos/CT_1/a.pdf", s.PublicURL("contratos/CT_1/a.pdf"))
	assert.Equal(t, "https://cdn.example.com/a.pdf", s.PublicURL("/a.pdf"))
}

func TestNewStorageClientRequiresBucket(t *testing.T) {
	_, err := NewStorageClient(context.Background(), Options{Region: "us-east-2"})
	assert.Error(t, err)
}

func TestUploadRejectsEmptyKey(t *testing.T) {
	s := &storageClient{bucket: "b", baseURL: "https://cdn.example.com"}
	_, err := s.UploadFile(context.Background(), []byte("x"), "", "")
	assert.Error(t, err)
}
