package chk

// Pattern: Decorator — a Decorator wraps a Check with additional
// behavior; composing decorators builds wait pipelines (delay, then
// poll, then repeat) from configuration or presets.

// Decorator wraps a Check with additional behavior.
type Decorator func(Check) Check

// Compose combines multiple decorators into one. Decorators are applied
// in order: the first decorator is the outermost wrapper.
//
// Compose(a, b, c) produces a(b(c(check))) — a is outermost, c is
// innermost. Compose() with zero decorators returns the identity.
func Compose(decorators ...Decorator) Decorator {
	return func(c Check) Check {
		for i := len(decorators) - 1; i >= 0; i-- {
			c = decorators[i](c)
		}

		return c
	}
}
