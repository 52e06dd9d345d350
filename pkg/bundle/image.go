package bundle

import (
	"strings"

	"storefront-be/internal/entity"
)

type ResolvedImage struct {
	URL     string  `json:"url"`
	AltText *string `json:"alt_text"`
}

type FallbackImageRule struct {
	Name     string
	Keywords []string
	Image    ResolvedImage
}

func alt(s string) *string { return &s }

var (
	CompressionSockImage = ResolvedImage{
		URL:     "/images/fallback/compression-sock.jpg",
		AltText: alt("Graduated compression sock"),
	}
	DonningAidImage = ResolvedImage{
		URL:     "/images/fallback/donning-aid-lifestyle.jpg",
		AltText: alt("Donning aid in use"),
	}
	FootieImage = ResolvedImage{
		URL:     "/images/fallback/footie.jpg",
		AltText: alt("Compression footie"),
	}
	DefaultProductImage = ResolvedImage{
		URL:     "/images/fallback/default-product.jpg",
		AltText: alt("Product image"),
	}
)

// DefaultFallbackImageRules is checked in order against type, handle and title.
var DefaultFallbackImageRules = []FallbackImageRule{
	{Name: "compression", Keywords: []string{"compression", "sock"}, Image: CompressionSockImage},
	{Name: "donning", Keywords: []string{"donning", "aid"}, Image: DonningAidImage},
	{Name: "footie", Keywords: []string{"footie"}, Image: FootieImage},
}

type ImageResolver struct {
	rules    []FallbackImageRule
	fallback ResolvedImage
}

func NewImageResolver(rules []FallbackImageRule, fallback ResolvedImage) *ImageResolver {
	if fallback.URL == "" {
		fallback = DefaultProductImage
	}
	copied := make([]FallbackImageRule, len(rules))
	copy(copied, rules)
	return &ImageResolver{rules: copied, fallback: fallback}
}

func NewDefaultImageResolver() *ImageResolver {
	return NewImageResolver(DefaultFallbackImageRules, DefaultProductImage)
}

// Fallback picks a stock image from whatever descriptive fields are known.
// It never returns an empty URL.
func (r *ImageResolver) Fallback(productType, handle, title *string) ResolvedImage {
	fields := [3]string{lowerOrEmpty(productType), lowerOrEmpty(handle), lowerOrEmpty(title)}
	for _, rule := range r.rules {
		if rule.Image.URL == "" {
			continue
		}
		for _, kw := range rule.Keywords {
			if anyContains(fields[:], kw) {
				return rule.Image
			}
		}
	}
	return r.fallback
}

// Resolve prefers the catalog's first image and only falls back when it is
// missing or has no URL.
func (r *ImageResolver) Resolve(p entity.Product) ResolvedImage {
	if len(p.Images) > 0 && strings.TrimSpace(p.Images[0].URL) != "" {
		return ResolvedImage{URL: p.Images[0].URL, AltText: p.Images[0].AltText}
	}
	title := p.Title
	return r.Fallback(p.ProductType, p.Handle, &title)
}

func lowerOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(*s)
}

func anyContains(fields []string, kw string) bool {
	for _, f := range fields {
		if strings.Contains(f, kw) {
			return true
		}
	}
	return false
}
