package constants

import (
	"strings"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	// Test that default values are set correctly
	if DefaultPort != "8080" {
		t.Errorf("Expected DefaultPort to be '8080', got '%s'", DefaultPort)
	}

	if DefaultDBPath != "data/wraith.db" {
		t.Errorf("Expected DefaultDBPath to be 'data/wraith.db', got '%s'", DefaultDBPath)
	}

	if PageSize != 50 {
		t.Errorf("Expected PageSize to be 50, got %d", PageSize)
	}
}

func TestAlbumTypes(t *testing.T) {
	types := []string{
		AlbumTypeAlbum,
		AlbumTypeSingle,
		AlbumTypeCompilation,
	}

	for _, at := range types {
		if at == "" {
			t.Error("Album type constant should not be empty")
		}
	}
}

func TestQRCodeURLTemplate(t *testing.T) {
	if !strings.Contains(QRCodeURLTemplate, "%s") {
		t.Error("QRCodeURLTemplate must contain a URI placeholder")
	}
}
