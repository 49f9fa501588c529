package llm

import (
	"context"
	"sync"
)

// Provider is the uniform adapter contract each vendor implements.
//
// RewritePrompt never returns an error: every vendor-specific failure
// (authentication, rate limit, server, network) is recovered locally and
// surfaced as Result.Success == false with a distinct, user-presentable
// message. Blank or whitespace-only keys are rejected before any network
// call. Callers bound the call with the context; a canceled context aborts
// the in-flight request.
type Provider interface {
	// Name returns the vendor identifier (e.g. "openai", "claude").
	Name() string

	// RewritePrompt sends one rewrite request to the vendor. model may be
	// empty to use the vendor default.
	RewritePrompt(ctx context.Context, req RewriteRequest, apiKey, model string) Result

	// ValidateKey reports whether the key is usable. Blank keys are false
	// without a network call.
	ValidateKey(ctx context.Context, apiKey string) bool
}

var (
	providerRegistry = make(map[string]Provider)
	providerMu       sync.RWMutex
)

// RegisterProvider adds a provider to the registry. Adapters call this from
// init; after startup the registry is effectively read-only.
func RegisterProvider(p Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providerRegistry[p.Name()] = p
}

// GetProvider retrieves a provider by vendor name, or nil.
func GetProvider(name string) Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return providerRegistry[name]
}

// ListProviders returns all registered vendor names.
func ListProviders() []string {
	providerMu.RLock()
	defer providerMu.RUnlock()

	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	return names
}
