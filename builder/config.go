// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • logger     = nil (resolved from the build context via logx.Logger)
//   • checkEvery = defaultCheckEvery

package builder

import (
	"github.com/sirupsen/logrus"
)

// defaultCheckEvery is the token stride between context checks.
const defaultCheckEvery = 4096

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	logger     logrus.FieldLogger // nil ⇒ logger from context
	checkEvery int                // tokens between ctx.Err() checks
}

// newBuilderConfig applies opts in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{checkEvery: defaultCheckEvery}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
