// Package placeholder resolves ${key} style placeholder expressions in
// configuration strings against a pluggable key/value resolver.
//
// Placeholders nest (a key may itself contain placeholders), carry optional
// default values behind a separator, and can be escaped to produce literal
// marker text. Values returned by the resolver are resolved transitively,
// and circular references are detected and reported with the full chain of
// values involved.
//
// # Basic Usage
//
// Create an engine and resolve text against a resolver:
//
//	engine := placeholder.MustNew()
//	result, err := engine.ReplacePlaceholders("Hello, ${user:World}!", placeholder.MapResolver{
//	    "user": "Alice",
//	})
//	// result: "Hello, Alice!"
//
// The default configuration uses "${" and "}" markers, ":" as the
// default-value separator, and backslash as the escape character:
//
//	${key}          resolver value for "key"
//	${key:fallback} resolver value, or "fallback" when the key is unknown
//	${${outer}}     the key itself is resolved first
//	\${key}         the literal text "${key}", no lookup
//
// # Parsing Once, Resolving Often
//
// Parse returns an immutable structure that can be resolved repeatedly,
// against different resolvers:
//
//	parsed := engine.Parse("${database.host}:${database.port}")
//	prod, err := engine.Resolve(parsed, prodConfig)
//	test, err := engine.Resolve(parsed, testConfig)
//
// # Resolvers
//
// Any type with Resolve(key) (string, bool) works as a source. The package
// ships MapResolver, EnvResolver, YAMLResolver, PostgresResolver, and
// ChainResolver for combining them; ResolverFunc adapts plain functions.
//
// Text that never forms a balanced placeholder is not an error: it stays in
// the output unchanged. Unresolvable keys fail with a *ResolutionError
// unless the engine is built WithIgnoreUnresolvable(true), in which case
// the placeholder text passes through verbatim.
package placeholder

// Version is the current library version.
const Version = "1.0.0"

// defaultEngine backs the package-level convenience functions. It uses the
// default marker configuration and fails on unresolvable placeholders.
var defaultEngine = MustNew()

// ReplacePlaceholders resolves all placeholders in text against resolver
// using the default engine configuration.
func ReplacePlaceholders(text string, resolver Resolver) (string, error) {
	return defaultEngine.ReplacePlaceholders(text, resolver)
}

// Parse parses text using the default engine configuration.
func Parse(text string) *ParsedValue {
	return defaultEngine.Parse(text)
}
