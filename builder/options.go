// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs (nil values).
//     Build itself never panics.

package builder

import (
	"github.com/sirupsen/logrus"
)

// BuilderOption customizes a build by mutating builderConfig before the
// graph is populated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLogger overrides the logger taken from the build context.
// Panics on nil to surface programmer error early.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithCheckEvery sets how many tokens are processed between context
// cancellation checks. Panics on n <= 0.
func WithCheckEvery(n int) BuilderOption {
	if n <= 0 {
		panic("builder: WithCheckEvery(n<=0)")
	}
	return func(c *builderConfig) {
		c.checkEvery = n
	}
}
