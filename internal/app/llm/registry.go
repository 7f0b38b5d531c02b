package llm

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "meeting-insights/internal/app/errors"
)

// GeneratorCreator builds a Generator from provider configuration
type GeneratorCreator func(cfg ProviderConfig) (Generator, error)

var (
	registry      = make(map[string]GeneratorCreator)
	registryMutex sync.RWMutex
)

// Register makes a provider available to New. Providers call it from init.
func Register(name string, creator GeneratorCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[strings.ToLower(name)] = creator
}

// New creates the Generator for cfg.Provider
func New(cfg ProviderConfig) (Generator, error) {
	registryMutex.RLock()
	creator, ok := registry[strings.ToLower(cfg.Provider)]
	registryMutex.RUnlock()

	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrUnknownProvider, apperrors.KindConfiguration,
			"provider %q is not registered (available: %s)", cfg.Provider, strings.Join(Registered(), ", "))
	}

	gen, err := creator(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s generator: %w", cfg.Provider, err)
	}
	return gen, nil
}

// Registered lists registered provider names in sorted order
func Registered() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
