package bundle

import (
	"context"
	"sync"

	"storefront-be/internal/entity"
)

type Member struct {
	Product  entity.Product
	Image    ResolvedImage
	Price    entity.Money
	Selected bool
	IsSource bool
}

// Snapshot is the state a view renders after each mutation.
type Snapshot struct {
	Version   uint64
	Policy    PolicyName
	Loading   bool
	Rendered  bool
	Source    *entity.Product
	Members   []Member
	Totals    Totals
	CanCommit bool
	// Degraded holds the reason the bundle hid itself, if it did.
	Degraded error
}

// Observer runs with the view locked and must not call back into it.
type Observer func(Snapshot)

// View binds an Engine to the source product currently on screen. Each Load
// takes a new request token and only the latest token may install its
// candidates, so a slow fetch for an old product never overwrites a newer one.
type View struct {
	mu        sync.Mutex
	catalog   CatalogQueryProvider
	rules     *AssociationResolver
	images    *ImageResolver
	policy    Policy
	token     uint64
	version   uint64
	source    *entity.Product
	engine    *Engine
	degraded  error
	observers map[int]Observer
	nextObs   int
}

type ViewOption func(*View)

func WithAssociationResolver(r *AssociationResolver) ViewOption {
	return func(v *View) { v.rules = r }
}

func WithImageResolver(r *ImageResolver) ViewOption {
	return func(v *View) { v.images = r }
}

func NewView(provider CatalogQueryProvider, policy Policy, opts ...ViewOption) *View {
	v := &View{
		catalog:   provider,
		policy:    policy,
		rules:     NewDefaultAssociationResolver(),
		images:    NewDefaultImageResolver(),
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load switches the view to source and fetches its candidates. Catalog
// failures and empty results leave the view unrendered and are reported in
// the snapshot, not as an error. ErrSuperseded means a newer Load won.
func (v *View) Load(ctx context.Context, source entity.Product) (Snapshot, error) {
	v.mu.Lock()
	v.token++
	token := v.token
	src := source
	v.source = &src
	v.engine = nil
	v.degraded = nil
	v.publishLocked()
	v.mu.Unlock()

	candidates, err := BuildCandidateSet(ctx, v.catalog, v.rules, source, v.policy.CandidateCount)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.token {
		return Snapshot{}, ErrSuperseded
	}
	if err != nil {
		v.degraded = err
	} else {
		v.engine = NewEngine(source, candidates, v.policy)
	}
	return v.publishLocked(), nil
}

// Toggle flips productId in the selection. The bool is false when the id is
// not a member or nothing is rendered.
func (v *View) Toggle(productId string) (Snapshot, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.engine == nil || !v.engine.Toggle(productId) {
		return v.snapshotLocked(), false
	}
	return v.publishLocked(), true
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) Totals() Totals {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.engine == nil {
		return computeTotals(nil, v.policy.DiscountRate, v.policy.CurrencyCode)
	}
	return v.engine.Totals()
}

func (v *View) Commit(ctx context.Context, cart CartAggregator, sink NotificationSink) (CommitResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.engine == nil {
		return CommitResult{}, ErrNotRendered
	}
	return v.engine.Commit(ctx, cart, sink)
}

// Subscribe registers o for every future snapshot. The returned func removes it.
func (v *View) Subscribe(o Observer) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextObs
	v.nextObs++
	v.observers[id] = o
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.observers, id)
	}
}

func (v *View) publishLocked() Snapshot {
	v.version++
	s := v.snapshotLocked()
	for _, o := range v.observers {
		o(s)
	}
	return s
}

func (v *View) snapshotLocked() Snapshot {
	s := Snapshot{
		Version:  v.version,
		Policy:   v.policy.Name,
		Degraded: v.degraded,
	}
	if v.source != nil {
		src := *v.source
		s.Source = &src
	}
	if v.engine == nil {
		s.Loading = v.source != nil && v.degraded == nil
		s.Totals = computeTotals(nil, v.policy.DiscountRate, v.policy.CurrencyCode)
		return s
	}

	s.Rendered = true
	s.Totals = v.engine.Totals()
	s.CanCommit = v.engine.CanCommit()
	for i, p := range v.engine.Members() {
		s.Members = append(s.Members, Member{
			Product:  p,
			Image:    v.images.Resolve(p),
			Price:    p.MinVariantPrice(),
			Selected: v.engine.IsSelected(p.Id),
			IsSource: i == 0,
		})
	}
	return s
}
