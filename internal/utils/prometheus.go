package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	onceForRegistry sync.Once
	registry        *prometheus.Registry
)

// PromRegistry returns the registry every collector of this module registers on,
// initialized once only.
func PromRegistry() *prometheus.Registry {
	onceForRegistry.Do(func() {
		registry = prometheus.NewRegistry()
	})
	return registry
}
