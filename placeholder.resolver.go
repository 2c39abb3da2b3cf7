package placeholder

// Resolver supplies values for placeholder keys. It is a capability the
// caller hands to the engine per resolution call; the engine never retains
// it beyond one call tree and never writes through it.
//
// Resolve returns the value for key and whether one exists. An empty value
// with ok=true is a resolved value, not a miss: the engine will not fall
// back to the placeholder's default for it.
type Resolver interface {
	Resolve(key string) (value string, ok bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(key string) (string, bool)

// Resolve calls the function.
func (f ResolverFunc) Resolve(key string) (string, bool) {
	return f(key)
}

// MapResolver resolves keys from a plain map. The map must not be mutated
// while resolutions are in flight.
type MapResolver map[string]string

// Resolve looks the key up in the map.
func (m MapResolver) Resolve(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// ChainResolver consults a sequence of resolvers in order; the first one
// that knows the key wins.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a chain over the given resolvers. Nil entries
// are skipped.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	chain := &ChainResolver{}
	for _, r := range resolvers {
		if r != nil {
			chain.resolvers = append(chain.resolvers, r)
		}
	}
	return chain
}

// Append adds a resolver to the end of the chain.
func (c *ChainResolver) Append(r Resolver) *ChainResolver {
	if r != nil {
		c.resolvers = append(c.resolvers, r)
	}
	return c
}

// Resolve asks each resolver in order and returns the first hit.
func (c *ChainResolver) Resolve(key string) (string, bool) {
	for _, r := range c.resolvers {
		if value, ok := r.Resolve(key); ok {
			return value, true
		}
	}
	return "", false
}

// Len returns the number of resolvers in the chain.
func (c *ChainResolver) Len() int {
	return len(c.resolvers)
}
