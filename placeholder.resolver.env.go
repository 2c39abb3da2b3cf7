package placeholder

import (
	"os"
	"strings"
)

// EnvResolver resolves placeholder keys from the process environment.
//
// With a key prefix configured, only keys carrying that prefix are looked
// up (with the prefix stripped), so an EnvResolver can sit inside a
// ChainResolver without shadowing same-named keys from other sources:
//
//	${env:HOME} -> os.LookupEnv("HOME")
type EnvResolver struct {
	keyPrefix string
}

// NewEnvResolver creates a resolver over the whole environment.
func NewEnvResolver() *EnvResolver {
	return &EnvResolver{}
}

// NewEnvResolverWithPrefix creates a resolver that only answers keys
// starting with keyPrefix, e.g. "env:".
func NewEnvResolverWithPrefix(keyPrefix string) *EnvResolver {
	return &EnvResolver{keyPrefix: keyPrefix}
}

// Resolve looks the key up in the environment. Variables that are set but
// empty resolve to the empty string.
func (r *EnvResolver) Resolve(key string) (string, bool) {
	if r.keyPrefix != "" {
		if !strings.HasPrefix(key, r.keyPrefix) {
			return "", false
		}
		key = key[len(r.keyPrefix):]
	}
	return os.LookupEnv(key)
}
