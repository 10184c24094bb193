package yamlnode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	docport "github.com/reoring/docport"
)

// FromYAML parses a YAML document and returns an adapter over its root
// node. Empty input yields an absent-reading but writable root.
func FromYAML(b []byte) (Adapter, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(b, &n); err != nil {
		return Adapter{}, fmt.Errorf("yamlnode: decode yaml: %w", err)
	}
	return Adapter{n: deref(&n)}, nil
}

// YAML serializes the value behind any adapter, whatever its backend, as
// YAML. Foreign backends are materialized through a fresh node tree first;
// native ones marshal their own nodes, preserving member order and style.
func YAML(a docport.Adapter) ([]byte, error) {
	na, ok := a.(Adapter)
	if !ok {
		na = New()
		docport.Assign(na, a)
	}
	n := na.n
	if n == nil || n.Kind == 0 {
		n = nullNode()
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("yamlnode: encode yaml: %w", err)
	}
	return out, nil
}
