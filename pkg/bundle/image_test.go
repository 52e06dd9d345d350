package bundle

import (
	"testing"

	"storefront-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageResolver_Fallback(t *testing.T) {
	r := NewDefaultImageResolver()

	tests := []struct {
		name        string
		productType *string
		handle      *string
		title       *string
		want        ResolvedImage
	}{
		{"all nil", nil, nil, nil, DefaultProductImage},
		{"type compression", strPtr("Compression Socks"), nil, nil, CompressionSockImage},
		{"handle sock", nil, strPtr("wide-calf-sock"), nil, CompressionSockImage},
		{"title donning", nil, nil, strPtr("Donning Frame"), DonningAidImage},
		{"aid beats footie", nil, strPtr("footie-aid"), nil, DonningAidImage},
		{"sock beats aid", strPtr("Sock Aid"), nil, nil, CompressionSockImage},
		{"footie", nil, nil, strPtr("Silver Footie"), FootieImage},
		{"no keyword", strPtr("Gift Card"), strPtr("gift-card"), strPtr("Gift Card"), DefaultProductImage},
		{"empty strings", strPtr(""), strPtr(""), strPtr(""), DefaultProductImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Fallback(tt.productType, tt.handle, tt.title)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.URL)
		})
	}
}

func TestImageResolver_ResolvePrefersCatalogImage(t *testing.T) {
	r := NewDefaultImageResolver()
	p := product("p1", "Compression Sock", "24.99")
	p.Images = []entity.ProductImage{{URL: "https://cdn.example.com/p1.jpg", AltText: strPtr("Black sock")}}

	got := r.Resolve(p)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", got.URL)
	require.NotNil(t, got.AltText)
	assert.Equal(t, "Black sock", *got.AltText)
}

func TestImageResolver_ResolveFallsBackOnBlankFirstImage(t *testing.T) {
	r := NewDefaultImageResolver()
	p := product("p1", "Donning Butler", "39.00")
	p.Images = []entity.ProductImage{{URL: ""}, {URL: "https://cdn.example.com/second.jpg"}}

	assert.Equal(t, DonningAidImage, r.Resolve(p))

	p.Images = nil
	assert.Equal(t, DonningAidImage, r.Resolve(p))
}

func TestNewImageResolver_EmptyFallbackUsesDefault(t *testing.T) {
	r := NewImageResolver(nil, ResolvedImage{})
	assert.Equal(t, DefaultProductImage, r.Fallback(nil, nil, nil))
}
