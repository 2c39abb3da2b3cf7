package placeholder

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLResolver resolves placeholder keys from a YAML document. Nested
// mappings flatten into dot-separated key paths, sequences into indexed
// segments:
//
//	database:
//	  host: localhost
//	  replicas: [a, b]
//
// resolves "database.host" to "localhost" and "database.replicas.1" to "b".
// Scalars keep their YAML text form; null values resolve to the empty
// string.
type YAMLResolver struct {
	values map[string]string
}

// NewYAMLResolver parses data as a YAML document and builds a resolver
// over its flattened keys.
func NewYAMLResolver(data []byte) (*YAMLResolver, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewSourceError(ErrMsgYAMLParseFailed, err)
	}

	values := make(map[string]string)
	if doc != nil {
		flattenYAML(doc, "", values)
	}
	return &YAMLResolver{values: values}, nil
}

// NewYAMLResolverFromFile reads path and builds a resolver from its
// contents.
func NewYAMLResolverFromFile(path string) (*YAMLResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewSourceError(ErrMsgYAMLReadFailed, err)
	}
	return NewYAMLResolver(data)
}

// Resolve looks the flattened key path up.
func (r *YAMLResolver) Resolve(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns all flattened key paths in sorted order.
func (r *YAMLResolver) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for key := range r.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of flattened keys.
func (r *YAMLResolver) Len() int {
	return len(r.values)
}

// flattenYAML walks a decoded YAML node and records every leaf under its
// dot-joined path.
func flattenYAML(node any, path string, out map[string]string) {
	switch value := node.(type) {
	case map[string]any:
		for key, child := range value {
			flattenYAML(child, joinYAMLPath(path, key), out)
		}
	case []any:
		for i, child := range value {
			flattenYAML(child, joinYAMLPath(path, strconv.Itoa(i)), out)
		}
	case nil:
		out[path] = ""
	case string:
		out[path] = value
	default:
		out[path] = fmt.Sprint(value)
	}
}

func joinYAMLPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + YAMLKeySeparator + segment
}
