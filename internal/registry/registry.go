package registry

import (
	"sync"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/config"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Registry is the immutable chain metadata table. Built once, then shared
// for concurrent read access without locking.
type Registry struct {
	chains    []chain.Metadata
	configs   map[string]chain.Config
	curves    map[string]chain.CurveConfig
	pipelines map[string]struct{}
	skipped   []string
}

//nolint:gochecknoglobals // construct-once process-wide singleton
var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the process-wide registry over the embedded definitions,
// building it on first access.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Build(NewLoader(""), config.NullLogger())
	})
	return defaultReg, defaultErr
}

// Build constructs a registry from the loader. A chain that fails to load
// or convert is skipped with a diagnostic; only an unreadable index, or an
// index from which no chain at all survives, is fatal.
func Build(loader *Loader, logger *config.Logger) (*Registry, error) {
	idx, err := loader.Index()
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		configs:   make(map[string]chain.Config, len(idx.Chains)),
		curves:    make(map[string]chain.CurveConfig),
		pipelines: make(map[string]struct{}, len(idx.Pipelines)),
	}
	for _, p := range idx.Pipelines {
		reg.pipelines[p] = struct{}{}
	}

	for _, id := range idx.Chains {
		cfg, loadErr := loader.Chain(id)
		if loadErr != nil {
			logger.Error("registry: skipping chain %s: %v", id, loadErr)
			reg.skipped = append(reg.skipped, id)
			continue
		}
		meta, convErr := chain.Convert(cfg)
		if convErr != nil {
			logger.Error("registry: skipping chain %s: %v", id, convErr)
			reg.skipped = append(reg.skipped, id)
			continue
		}
		reg.chains = append(reg.chains, meta)
		reg.configs[cfg.ID] = cfg
	}
	if len(reg.chains) == 0 {
		return nil, wcerrors.WithDetails(wcerrors.ErrRegistryLoad, map[string]string{
			"reason": "no chain definition could be loaded",
		})
	}

	curves, err := loader.Curves()
	if err != nil {
		logger.Error("registry: curve definitions unavailable: %v", err)
	}
	for _, c := range curves {
		reg.curves[c.ID] = c
	}

	logger.Debug("registry: loaded %d chains, skipped %d", len(reg.chains), len(reg.skipped))
	return reg, nil
}

// Chains returns the chain metadata in index order. Callers must not
// mutate the returned slice.
func (r *Registry) Chains() []chain.Metadata {
	return r.chains
}

// ChainIDs returns the loaded chain ids in index order.
func (r *Registry) ChainIDs() []string {
	ids := make([]string, len(r.chains))
	for i, m := range r.chains {
		ids[i] = m.ID
	}
	return ids
}

// Chain returns the metadata for one chain id.
func (r *Registry) Chain(id string) (chain.Metadata, error) {
	for _, m := range r.chains {
		if m.ID == id {
			return m, nil
		}
	}
	return chain.Metadata{}, wcerrors.WithDetails(wcerrors.ErrUnknownChain, map[string]string{
		"chain": id,
	})
}

// ChainConfig returns the raw definition record for one chain id. This is
// the bridge the derivation dispatcher uses to resolve pipeline id and
// parameters.
func (r *Registry) ChainConfig(id string) (chain.Config, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return chain.Config{}, wcerrors.WithDetails(wcerrors.ErrUnknownChain, map[string]string{
			"chain": id,
		})
	}
	return cfg, nil
}

// Curve returns a curve definition, if one was loaded.
func (r *Registry) Curve(id string) (chain.CurveConfig, bool) {
	c, ok := r.curves[id]
	return c, ok
}

// Curves returns all loaded curve definitions keyed by id.
func (r *Registry) Curves() map[string]chain.CurveConfig {
	return r.curves
}

// KnownPipeline reports whether the index declares the pipeline id.
func (r *Registry) KnownPipeline(id string) bool {
	_, ok := r.pipelines[id]
	return ok
}

// Skipped returns the ids of chains that failed to load, for diagnostics.
func (r *Registry) Skipped() []string {
	return r.skipped
}
