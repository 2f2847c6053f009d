package cache

// ScopedKeyer wraps a Keyer with a prefix, so several tools or users can
// share one Redis instance without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "raagpile:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PilingKey generates a prefixed key for piling results.
func (k *ScopedKeyer) PilingKey(groupHash string, opts PilingKeyOpts) string {
	return k.prefix + k.inner.PilingKey(groupHash, opts)
}
