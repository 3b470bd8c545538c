package chk

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type (
	// profileFile is the top-level document structure.
	profileFile struct {
		Profiles map[string]ProfileConfig `json:"profiles" yaml:"profiles"`
	}

	// ProfileConfig holds the decoded configuration for a single wait
	// profile. Export it to embed in your own app config structs for JSON
	// or YAML unmarshaling, then call [BuildOptions] or [BuildDecorator]
	// to obtain the corresponding option set or check wrapper.
	ProfileConfig struct {
		// Interval is the pause between poll evaluations, and the base
		// duration for non-constant strategies.
		// Optional. Parsed via time.ParseDuration. Example: "25ms".
		Interval *string `json:"interval,omitempty" yaml:"interval,omitempty"`
		// Strategy is the poll spacing strategy name.
		// Optional. One of: "constant", "linear", "exponential", "jitter".
		// Defaults to "constant".
		Strategy *string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
		// Delay sleeps before the first evaluation.
		// Optional. Parsed via time.ParseDuration. Example: "100ms".
		Delay *string `json:"delay,omitempty" yaml:"delay,omitempty"`
		// Within is the polling window for an eventually-style wait.
		// Optional. Parsed via time.ParseDuration. Example: "2s".
		Within *string `json:"within,omitempty" yaml:"within,omitempty"`
		// ConsistentFor requires the condition to hold on that many
		// consecutive evaluations.
		// Optional. Example: 3.
		ConsistentFor *int `json:"consistent_for,omitempty" yaml:"consistent_for,omitempty"`
	}

	// Profiles stores named wait profiles loaded from a config file.
	Profiles struct {
		mu      sync.Mutex
		configs map[string]ProfileConfig
	}
)

// LoadProfiles reads a JSON or YAML configuration file (chosen by file
// extension: .yaml/.yml means YAML, anything else JSON) and returns the
// named wait profiles it defines. All profiles are validated eagerly so
// errors surface at load time.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chk: read config: %w", err)
	}

	var cfg profileFile

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("chk: parse config: %w", err)
	}

	for name, pc := range cfg.Profiles {
		if _, buildErr := BuildDecorator(&pc); buildErr != nil {
			return nil, fmt.Errorf("chk: profile %q: %w", name, buildErr)
		}
	}

	return &Profiles{configs: cfg.Profiles}, nil
}

// Get returns the named profile configuration.
func (p *Profiles) Get(name string) (ProfileConfig, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pc, ok := p.configs[name]

	return pc, ok
}

// Options returns the poll options for the named profile, or nil when
// the name is unknown. Additional options can be appended by the caller
// and take precedence, since later options override earlier ones.
func (p *Profiles) Options(name string) []Option {
	pc, ok := p.Get(name)
	if !ok {
		return nil
	}

	opts, err := BuildOptions(&pc)
	if err != nil {
		return nil
	}

	return opts
}

// Apply wraps c with the named profile's decorator (delay, window,
// consistency). Unknown names return c unchanged.
func (p *Profiles) Apply(name string, c Check) Check {
	pc, ok := p.Get(name)
	if !ok {
		return c
	}

	dec, err := BuildDecorator(&pc)
	if err != nil {
		return c
	}

	return dec(c)
}

// BuildOptions converts a [ProfileConfig] into poll options suitable
// for the temporal combinators. Use this when you embed [ProfileConfig]
// in your own config struct.
func BuildOptions(pc *ProfileConfig) ([]Option, error) {
	var opts []Option

	interval := DefaultInterval

	if pc.Interval != nil {
		d, err := time.ParseDuration(*pc.Interval)
		if err != nil {
			return nil, fmt.Errorf("interval: %w", err)
		}

		interval = d

		opts = append(opts, WithInterval(d))
	}

	if pc.Strategy != nil {
		strategy, err := parseIntervalStrategy(*pc.Strategy, interval)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithStrategy(strategy))
	}

	return opts, nil
}

// BuildDecorator converts a [ProfileConfig] into a [Decorator] that
// applies the profile's delay, polling window and consistency
// requirement, outermost first in that order.
func BuildDecorator(pc *ProfileConfig) (Decorator, error) {
	opts, err := BuildOptions(pc)
	if err != nil {
		return nil, err
	}

	var decorators []Decorator

	if pc.Delay != nil {
		d, delayErr := time.ParseDuration(*pc.Delay)
		if delayErr != nil {
			return nil, fmt.Errorf("delay: %w", delayErr)
		}

		decorators = append(decorators, func(c Check) Check {
			return c.Delayed(d, opts...)
		})
	}

	if pc.Within != nil {
		w, withinErr := time.ParseDuration(*pc.Within)
		if withinErr != nil {
			return nil, fmt.Errorf("within: %w", withinErr)
		}

		decorators = append(decorators, func(c Check) Check {
			return c.Eventually(w, opts...)
		})
	}

	if pc.ConsistentFor != nil {
		times := *pc.ConsistentFor

		decorators = append(decorators, func(c Check) Check {
			return c.IsConsistentFor(times)
		})
	}

	return Compose(decorators...), nil
}

// parseIntervalStrategy maps a strategy name + base duration to an
// IntervalStrategy.
//
//nolint:ireturn // returns interface by design for strategy pattern
func parseIntervalStrategy(
	name string,
	base time.Duration,
) (IntervalStrategy, error) {
	switch name {
	case "constant":
		return ConstantInterval(base), nil
	case "linear":
		return LinearRampInterval(base), nil
	case "exponential":
		return ExponentialInterval(base), nil
	case "jitter":
		return JitterInterval(base), nil
	default:
		return nil, fmt.Errorf("unknown interval strategy: %q", name)
	}
}
