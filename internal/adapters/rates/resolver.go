package rates

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// Resolver produces the current native->fiat rate with bounded staleness.
//
// The cache is process-wide: many concurrent valuations read it, and
// expiry refreshes collapse into a single outstanding provider fetch. A
// total provider outage degrades to the last known snapshot, or to the
// configured fallback constant if no fetch has ever succeeded — GetRate
// never fails, because the rate is advisory and must not block governance
// or transaction operations.
type Resolver struct {
	cfg       *config.RuntimeConfig
	log       *slog.Logger
	clock     usecase.Clock
	providers []Provider
	printer   *message.Printer

	mu       sync.RWMutex
	snapshot *models.RateSnapshot

	group singleflight.Group
}

// NewResolver creates a resolver with the default provider chain, tried in
// priority order.
func NewResolver(cfg *config.RuntimeConfig, log *slog.Logger, clock usecase.Clock) *Resolver {
	client := &http.Client{}
	return NewResolverWithProviders(cfg, log, clock,
		NewCoinGecko(client),
		NewBinance(client),
		NewCryptoCompare(client),
	)
}

// NewResolverWithProviders creates a resolver with an explicit chain.
func NewResolverWithProviders(cfg *config.RuntimeConfig, log *slog.Logger, clock usecase.Clock, providers ...Provider) *Resolver {
	return &Resolver{
		cfg:       cfg,
		log:       log.With("component", "rates"),
		clock:     clock,
		providers: providers,
		printer:   message.NewPrinter(language.English),
	}
}

// GetRate returns the cached snapshot while it is fresh, refreshing it
// through the provider chain otherwise.
func (r *Resolver) GetRate(ctx context.Context) models.RateSnapshot {
	now := r.clock.Now()

	r.mu.RLock()
	snap := r.snapshot
	r.mu.RUnlock()
	if snap != nil && snap.Age(now) < r.cfg.PriceCacheTTL {
		return *snap
	}

	v, _, _ := r.group.Do("rate", func() (interface{}, error) {
		return r.refresh(ctx), nil
	})
	return v.(models.RateSnapshot)
}

// ConvertToFiat renders a native amount (smallest unit) as a fiat string
// with fixed two-decimal precision. By GetRate's contract this cannot fail.
func (r *Resolver) ConvertToFiat(ctx context.Context, nativeAmount *big.Int) string {
	rate := r.GetRate(ctx).Price

	tokens := new(big.Float).Quo(new(big.Float).SetInt(nativeAmount), big.NewFloat(1e18))
	fiat, _ := new(big.Float).Mul(tokens, big.NewFloat(rate)).Float64()

	return r.printer.Sprintf("%.2f", fiat)
}

func (r *Resolver) refresh(ctx context.Context) models.RateSnapshot {
	now := r.clock.Now()

	// A collapsed waiter may arrive after another flight already refreshed.
	r.mu.RLock()
	snap := r.snapshot
	r.mu.RUnlock()
	if snap != nil && snap.Age(now) < r.cfg.PriceCacheTTL {
		return *snap
	}

	for _, provider := range r.providers {
		price, err := r.fetchOne(ctx, provider)
		if err != nil {
			r.log.Warn("price provider failed", "provider", provider.Name(), "error", err)
			continue
		}

		fresh := models.RateSnapshot{Price: price, Source: provider.Name(), FetchedAt: r.clock.Now()}
		r.store(&fresh)
		return fresh
	}

	if snap != nil {
		r.log.Warn("all price providers failed, serving stale snapshot",
			"source", snap.Source, "age", snap.Age(now))
		return *snap
	}

	r.log.Warn("all price providers failed with empty cache, using fallback rate",
		"rate", r.cfg.FallbackRate)
	fallback := models.RateSnapshot{Price: r.cfg.FallbackRate, Source: "fallback", FetchedAt: now}
	r.store(&fallback)
	return fallback
}

func (r *Resolver) fetchOne(ctx context.Context, provider Provider) (float64, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.cfg.PriceProviderTimeout)
	defer cancel()

	price, err := provider.FetchPrice(fetchCtx)
	if err != nil {
		return 0, err
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &badPriceError{price: price}
	}
	return price, nil
}

func (r *Resolver) store(snap *models.RateSnapshot) {
	r.mu.Lock()
	r.snapshot = snap
	r.mu.Unlock()
}

type badPriceError struct {
	price float64
}

func (e *badPriceError) Error() string {
	return fmt.Sprintf("unusable price %v", e.price)
}

var _ usecase.RateResolver = (*Resolver)(nil)
