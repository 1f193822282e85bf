// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.logger != nil {
		t.Errorf("default logger: expected nil, got %v", cfg.logger)
	}
	if cfg.checkEvery != defaultCheckEvery {
		t.Errorf("default checkEvery: expected %d, got %d", defaultCheckEvery, cfg.checkEvery)
	}
}

// TestOptionsOverrideInOrder verifies later options win.
func TestOptionsOverrideInOrder(t *testing.T) {
	t.Parallel()

	l := logrus.New()
	cfg := newBuilderConfig(WithCheckEvery(10), WithLogger(l), WithCheckEvery(3))
	if cfg.checkEvery != 3 {
		t.Errorf("checkEvery: expected 3, got %d", cfg.checkEvery)
	}
	if cfg.logger != l {
		t.Errorf("logger was not applied")
	}
}

// TestOptionPanics verifies option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"nil logger":     func() { WithLogger(nil) },
		"zero stride":    func() { WithCheckEvery(0) },
		"negative value": func() { WithCheckEvery(-1) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
