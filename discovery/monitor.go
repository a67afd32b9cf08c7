package discovery

import (
	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/core"
)

// DiscoveryMonitor provides hooks to observe the discovery pipeline.
// Implement this interface to track intermediate steps during a search.
type DiscoveryMonitor interface {
	Start(wish string)
	AfterWishParse(fragment *ai.ParsedWish)
	AfterResolve(filters *core.WishFilters)
	AfterEnrichment(filters *core.WishFilters, reading *astro.Reading)
	EnrichmentSkipped(reason string)
	Matched(record *core.NameRecord)
	Finish(results []*core.NameRecord)
}

// noopMonitor is a no-op implementation of DiscoveryMonitor
type noopMonitor struct{}

var _ DiscoveryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                   {}
func (n *noopMonitor) AfterWishParse(_ *ai.ParsedWish)                  {}
func (n *noopMonitor) AfterResolve(_ *core.WishFilters)                 {}
func (n *noopMonitor) AfterEnrichment(_ *core.WishFilters, _ *astro.Reading) {}
func (n *noopMonitor) EnrichmentSkipped(_ string)                       {}
func (n *noopMonitor) Matched(_ *core.NameRecord)                       {}
func (n *noopMonitor) Finish(_ []*core.NameRecord)                      {}
