// FILE: internal/service/recommendation_service.go
// Product detail and complementary-product recommendations
package service

import (
	"context"

	"storefront-be/internal/dto"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/pkg/bundle"
)

type IRecommendationService interface {
	GetProduct(ctx context.Context, handle string) (*dto.ProductResponse, error)
	GetRecommendations(ctx context.Context, handle string, policy bundle.PolicyName) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	catalog  ICatalogService
	policies bundle.PolicySet
	rules    *bundle.AssociationResolver
	images   *bundle.ImageResolver
	logger   logger.ILogger
}

func NewRecommendationService(
	catalog ICatalogService,
	policies bundle.PolicySet,
	rules *bundle.AssociationResolver,
	images *bundle.ImageResolver,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		catalog:  catalog,
		policies: policies,
		rules:    rules,
		images:   images,
		logger:   log,
	}
}

func (s *recommendationService) GetProduct(ctx context.Context, handle string) (*dto.ProductResponse, error) {
	product, err := s.catalog.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	return mapper.ToProductResponse(*product, s.images.Resolve(*product)), nil
}

// GetRecommendations never fails because of the catalog: an unavailable
// catalog or an empty candidate set yields Rendered=false.
func (s *recommendationService) GetRecommendations(ctx context.Context, handle string, policyName bundle.PolicyName) (*dto.RecommendationResponse, error) {
	policy, err := s.policies.Get(policyName)
	if err != nil {
		return nil, err
	}

	source, err := s.catalog.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	res := &dto.RecommendationResponse{
		Policy:     string(policy.Name),
		Filter:     string(s.rules.ResolveFilter(source.Title)),
		Source:     mapper.ToProductCard(*source, s.images.Resolve(*source)),
		Candidates: []dto.ProductCard{},
	}

	candidates, err := bundle.BuildCandidateSet(ctx, s.catalog, s.rules, *source, policy.CandidateCount)
	if err != nil {
		s.logger.Warn("RECOMMENDATION", "Recommendations hidden", map[string]interface{}{
			"product_id": source.Id,
			"policy":     policy.Name,
			"error":      err.Error(),
		})
		return res, nil
	}

	res.Rendered = true
	for _, c := range candidates {
		res.Candidates = append(res.Candidates, mapper.ToProductCard(c, s.images.Resolve(c)))
	}
	return res, nil
}
