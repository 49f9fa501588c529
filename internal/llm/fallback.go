package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// DefaultMaxRetries bounds the total attempts across a whole fallback run,
// not per provider.
const DefaultMaxRetries = 2

// NoProviderMessage is returned when no enabled, keyed provider exists;
// the UI renders it directly.
const NoProviderMessage = "no AI provider available: enable a provider and configure its API key in settings"

// Manager runs rewrite requests against configured providers in priority
// order with sequential fallback. It holds no mutable state across calls;
// every run is driven entirely by the caller-supplied configuration.
type Manager struct {
	lookup  func(string) Provider
	logger  *slog.Logger
	onStart func(vendor string, attempt int)
	onDone  func(vendor string, success bool)
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLookup overrides provider resolution; tests use it to substitute fakes.
func WithLookup(fn func(string) Provider) ManagerOption {
	return func(m *Manager) {
		m.lookup = fn
	}
}

// WithLogger sets the logger used for attempt/fallback records.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithAttemptHooks installs callbacks fired around each provider attempt,
// used by the CLI to drive progress display. Either may be nil.
func WithAttemptHooks(onStart func(vendor string, attempt int), onDone func(vendor string, success bool)) ManagerOption {
	return func(m *Manager) {
		m.onStart = onStart
		m.onDone = onDone
	}
}

// NewManager creates a Manager over the global provider registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		lookup: GetProvider,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EligibleConfigs filters to enabled entries with non-blank keys and sorts
// them ascending by priority. The resulting attempt order is strictly
// deterministic for a given input ordering.
func EligibleConfigs(configs []ProviderConfig) []ProviderConfig {
	eligible := make([]ProviderConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Enabled && !isBlank(cfg.APIKey) {
			eligible = append(eligible, cfg)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Priority < eligible[j].Priority
	})
	return eligible
}

// RewriteWithFallback tries each eligible provider in priority order until
// one succeeds or the attempt budget runs out. Fallback is sequential by
// design: one vendor's failure is the decision to try the next, never a
// speculative race. A canceled context aborts without further attempts.
// maxRetries <= 0 uses DefaultMaxRetries.
func (m *Manager) RewriteWithFallback(ctx context.Context, req RewriteRequest, configs []ProviderConfig, maxRetries int) ResultWithProvider {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	eligible := EligibleConfigs(configs)
	if len(eligible) == 0 {
		return ResultWithProvider{Result: Failure(NoProviderMessage)}
	}

	attempts := 0
	var lastErr string
	var firstErr string

	for _, cfg := range eligible {
		if attempts >= maxRetries {
			break
		}
		if err := ctx.Err(); err != nil {
			lastErr = fmt.Sprintf("rewrite canceled: %v", err)
			break
		}

		provider := m.lookup(cfg.Vendor)
		if provider == nil {
			lastErr = fmt.Sprintf("unknown provider vendor %q", cfg.Vendor)
			m.logger.Warn("skipping unknown vendor", "vendor", cfg.Vendor)
			continue
		}

		attempts++
		m.logger.Debug("attempting provider",
			"vendor", cfg.Vendor,
			"priority", cfg.Priority,
			"attempt", attempts)
		if m.onStart != nil {
			m.onStart(cfg.Vendor, attempts)
		}

		result := m.invoke(ctx, provider, req, cfg)
		if m.onDone != nil {
			m.onDone(cfg.Vendor, result.Success)
		}
		if result.Success {
			return ResultWithProvider{
				Result:         result,
				Vendor:         cfg.Vendor,
				WasFallback:    attempts > 1,
				FallbackReason: firstErr,
			}
		}

		lastErr = result.Error
		if firstErr == "" {
			firstErr = result.Error
		}

		m.logger.Warn("provider failed, falling back",
			"vendor", cfg.Vendor,
			"error", result.Error)
	}

	if lastErr == "" {
		lastErr = NoProviderMessage
	}

	return ResultWithProvider{
		Result:         Failure(lastErr),
		WasFallback:    attempts > 1,
		FallbackReason: firstErr,
	}
}

// invoke calls one adapter with a panic backstop: an adapter that panics is
// treated identically to one that returned a failure result.
func (m *Manager) invoke(ctx context.Context, provider Provider, req RewriteRequest, cfg ProviderConfig) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure(fmt.Sprintf("%s adapter panic: %v", cfg.Vendor, r))
		}
	}()
	return provider.RewritePrompt(ctx, req, cfg.APIKey, cfg.Model)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
