package match

import "github.com/guddy2005/real-estate-app/core"

// Monitor provides hooks to observe the scoring sweep.
// Implement this interface to track intermediate steps and results
// during matching.
type Monitor interface {
	Start(query string, user core.UserType)
	AfterProfileLoad(profile *core.UserProfile)
	PropertyMatched(result Result)
	PropertyFiltered(name string)
	AfterCatalogSweep(regions, properties int)
	Finish(results []Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ core.UserType)       {}
func (n *noopMonitor) AfterProfileLoad(_ *core.UserProfile)  {}
func (n *noopMonitor) PropertyMatched(_ Result)              {}
func (n *noopMonitor) PropertyFiltered(_ string)             {}
func (n *noopMonitor) AfterCatalogSweep(_, _ int)            {}
func (n *noopMonitor) Finish(_ []Result)                     {}
