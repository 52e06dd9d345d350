// FILE: internal/service/bundle_service.go
// Live bundle views: selection, pricing and commit to cart
package service

import (
	"context"
	"errors"
	"time"

	"storefront-be/internal/dto"
	"storefront-be/internal/mapper"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/memory"
	"storefront-be/pkg/bundle"
	"storefront-be/pkg/store"

	"github.com/google/uuid"
)

var ErrBundleNotFound = errors.New("bundle not found")

type IBundleService interface {
	Create(ctx context.Context, req *dto.CreateBundleRequest) (*dto.BundleResponse, error)
	Get(ctx context.Context, id string) (*dto.BundleResponse, error)
	ChangeSource(ctx context.Context, id string, req *dto.ChangeBundleSourceRequest) (*dto.BundleResponse, error)
	Toggle(ctx context.Context, id string, req *dto.ToggleBundleItemRequest) (*dto.BundleResponse, error)
	Commit(ctx context.Context, id string, userId uuid.UUID) (*dto.BundleCommitResponse, error)
	Subscribe(id string, fn func(*dto.BundleResponse)) (func(), error)
}

type bundleService struct {
	catalog       ICatalogService
	policies      bundle.PolicySet
	rules         *bundle.AssociationResolver
	images        *bundle.ImageResolver
	sessions      *memory.SessionRepository
	carts         ICartService
	notifications INotificationService
	logger        logger.ILogger
}

func NewBundleService(
	catalog ICatalogService,
	policies bundle.PolicySet,
	rules *bundle.AssociationResolver,
	images *bundle.ImageResolver,
	sessions *memory.SessionRepository,
	carts ICartService,
	notifications INotificationService,
	log logger.ILogger,
) IBundleService {
	return &bundleService{
		catalog:       catalog,
		policies:      policies,
		rules:         rules,
		images:        images,
		sessions:      sessions,
		carts:         carts,
		notifications: notifications,
		logger:        log,
	}
}

func (s *bundleService) Create(ctx context.Context, req *dto.CreateBundleRequest) (*dto.BundleResponse, error) {
	policy, err := s.policies.Get(bundle.PolicyName(req.Policy))
	if err != nil {
		return nil, err
	}

	source, err := s.catalog.FindByHandle(ctx, req.ProductHandle)
	if err != nil {
		return nil, err
	}

	session := &store.BundleSession{
		ID:     uuid.New().String(),
		Policy: policy.Name,
		View: bundle.NewView(s.catalog, policy,
			bundle.WithAssociationResolver(s.rules),
			bundle.WithImageResolver(s.images),
		),
		CreatedAt: time.Now(),
	}
	s.sessions.Save(session)

	snap, err := session.View.Load(ctx, *source)
	if err != nil {
		return nil, err
	}
	s.logDegraded(session.ID, snap)
	return mapper.ToBundleResponse(session.ID, snap), nil
}

func (s *bundleService) Get(ctx context.Context, id string) (*dto.BundleResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return mapper.ToBundleResponse(id, session.View.Snapshot()), nil
}

// ChangeSource resets the selection for a new source product. When a newer
// change overtakes this one, the newer state is returned.
func (s *bundleService) ChangeSource(ctx context.Context, id string, req *dto.ChangeBundleSourceRequest) (*dto.BundleResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	source, err := s.catalog.FindByHandle(ctx, req.ProductHandle)
	if err != nil {
		return nil, err
	}

	snap, err := session.View.Load(ctx, *source)
	if errors.Is(err, bundle.ErrSuperseded) {
		s.logger.Debug("BUNDLE", "Source change superseded", map[string]interface{}{"bundle_id": id, "product_id": source.Id})
		snap = session.View.Snapshot()
	} else if err != nil {
		return nil, err
	}
	s.sessions.Save(session)
	s.logDegraded(id, snap)
	return mapper.ToBundleResponse(id, snap), nil
}

// Toggle ignores ids that are not part of the bundle and returns the
// unchanged state.
func (s *bundleService) Toggle(ctx context.Context, id string, req *dto.ToggleBundleItemRequest) (*dto.BundleResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	snap, _ := session.View.Toggle(req.ProductId)
	s.sessions.Save(session)
	return mapper.ToBundleResponse(id, snap), nil
}

func (s *bundleService) Commit(ctx context.Context, id string, userId uuid.UUID) (*dto.BundleCommitResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	result, err := session.View.Commit(ctx, s.carts.AggregatorFor(userId), s.notifications.SinkFor(userId))
	if err != nil {
		return nil, err
	}

	if len(result.Skipped) > 0 {
		s.logger.Warn("BUNDLE", "Skipped bundle items without a purchasable variant", map[string]interface{}{
			"bundle_id": id,
			"skipped":   result.Skipped,
		})
	}
	s.logger.Info("BUNDLE", "Bundle committed", map[string]interface{}{
		"bundle_id": id,
		"user_id":   userId,
		"added":     result.Added,
	})

	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return &dto.BundleCommitResponse{Added: result.Added, Skipped: skipped}, nil
}

func (s *bundleService) Subscribe(id string, fn func(*dto.BundleResponse)) (func(), error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return session.View.Subscribe(func(snap bundle.Snapshot) {
		fn(mapper.ToBundleResponse(id, snap))
	}), nil
}

func (s *bundleService) session(id string) (*store.BundleSession, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrBundleNotFound
	}
	return session, nil
}

func (s *bundleService) logDegraded(id string, snap bundle.Snapshot) {
	if snap.Degraded == nil {
		return
	}
	s.logger.Warn("BUNDLE", "Bundle hidden", map[string]interface{}{
		"bundle_id": id,
		"error":     snap.Degraded.Error(),
	})
}
