// Package yamlnode adapts gopkg.in/yaml.v3 node trees to the docport
// contract. Mapping members keep their document order, scalars are typed by
// resolved tag, and setters rewrite the node in place, so mutations stay
// visible to whoever owns the tree.
package yamlnode

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	docport "github.com/reoring/docport"
)

// Adapter is the mutable docport adapter over one yaml.v3 node. The zero
// Adapter holds no reference and reads as null.
type Adapter struct {
	n *yaml.Node
}

var (
	_ docport.Adapter        = Adapter{}
	_ docport.MutableAdapter = Adapter{}
)

// New returns an adapter over a fresh, initially null node.
func New() Adapter {
	return Adapter{n: &yaml.Node{}}
}

// Wrap returns an adapter over an externally owned node. Document wrappers
// and aliases are resolved to the underlying node.
func Wrap(n *yaml.Node) Adapter {
	return Adapter{n: deref(n)}
}

// Node returns the underlying yaml.v3 node, or nil for an absent adapter.
func (a Adapter) Node() *yaml.Node { return a.n }

// deref unwraps document and alias nodes.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func (a Adapter) IsObject() bool { return a.n != nil && a.n.Kind == yaml.MappingNode }

func (a Adapter) IsArray() bool { return a.n != nil && a.n.Kind == yaml.SequenceNode }

func (a Adapter) IsString() bool { return a.scalarTag() == "!!str" }

func (a Adapter) IsBool() bool { return a.scalarTag() == "!!bool" }

func (a Adapter) IsInteger() bool { return a.scalarTag() == "!!int" }

func (a Adapter) IsDouble() bool { return a.scalarTag() == "!!float" }

func (a Adapter) IsNumber() bool { return a.IsInteger() || a.IsDouble() }

func (a Adapter) IsNull() bool {
	if a.n == nil || a.n.Kind == 0 {
		return true
	}
	return a.scalarTag() == "!!null"
}

func (a Adapter) scalarTag() string {
	if a.n == nil || a.n.Kind != yaml.ScalarNode {
		return ""
	}
	return a.n.ShortTag()
}

func (a Adapter) GetBool() (bool, bool) {
	if !a.IsBool() {
		return false, false
	}
	switch a.n.Value {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	b, err := strconv.ParseBool(a.n.Value)
	if err != nil {
		return false, false
	}
	return b, true
}

func (a Adapter) GetInteger() (int64, bool) {
	if !a.IsInteger() {
		return 0, false
	}
	i, err := strconv.ParseInt(a.n.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (a Adapter) GetDouble() (float64, bool) {
	if !a.IsDouble() {
		return 0, false
	}
	switch a.n.Value {
	case ".inf", "+.inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(a.n.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (a Adapter) GetString() (string, bool) {
	if !a.IsString() {
		return "", false
	}
	return a.n.Value, true
}

func (a Adapter) Object() (docport.ObjectView, error) {
	if a.n == nil || a.IsNull() {
		// absent reads as the canonical empty object
		return docport.ObjectView{}, nil
	}
	if a.n.Kind != yaml.MappingNode {
		return docport.ObjectView{}, docport.NewTypeError(docport.KindObject, docport.KindOf(a))
	}
	return docport.NewObjectView(objectBridge{n: a.n}), nil
}

func (a Adapter) Array() (docport.ArrayView, error) {
	if a.n == nil || a.n.Kind != yaml.SequenceNode {
		return docport.ArrayView{}, docport.NewTypeError(docport.KindArray, docport.KindOf(a))
	}
	return docport.NewArrayView(arrayBridge{n: a.n}), nil
}

func (a Adapter) HasStrictTypes() bool { return true }

func (a Adapter) SetBool(v bool) { a.setScalar("!!bool", strconv.FormatBool(v)) }

func (a Adapter) SetInteger(v int64) { a.setScalar("!!int", strconv.FormatInt(v, 10)) }

func (a Adapter) SetDouble(v float64) { a.setScalar("!!float", formatFloat(v)) }

// formatFloat spells floats the YAML way: integral values keep a decimal
// point so the plain form resolves back to !!float, and the non-finite
// values use the core-schema spellings.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	case math.IsNaN(v):
		return ".nan"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (a Adapter) SetString(v string) { a.setScalar("!!str", v) }

func (a Adapter) SetAsArray() {
	if a.n == nil {
		return
	}
	reset(a.n)
	a.n.Kind = yaml.SequenceNode
	a.n.Tag = "!!seq"
}

func (a Adapter) SetAsObject() {
	if a.n == nil {
		return
	}
	reset(a.n)
	a.n.Kind = yaml.MappingNode
	a.n.Tag = "!!map"
}

func (a Adapter) setScalar(tag, val string) {
	if a.n == nil {
		return
	}
	reset(a.n)
	a.n.Kind = yaml.ScalarNode
	a.n.Tag = tag
	a.n.Value = val
}

func reset(n *yaml.Node) {
	n.Content = nil
	n.Value = ""
	n.Anchor = ""
	n.Alias = nil
	n.Style = 0
}

func (a Adapter) MutableObject() (docport.MutableObjectView, error) {
	if a.n == nil || a.IsNull() {
		return docport.MutableObjectView{}, nil
	}
	if a.n.Kind != yaml.MappingNode {
		return docport.MutableObjectView{}, docport.NewTypeError(docport.KindObject, docport.KindOf(a))
	}
	return docport.NewMutableObjectView(objectBridge{n: a.n}), nil
}

func (a Adapter) MutableArray() (docport.MutableArrayView, error) {
	if a.n == nil || a.n.Kind != yaml.SequenceNode {
		return docport.MutableArrayView{}, docport.NewTypeError(docport.KindArray, docport.KindOf(a))
	}
	return docport.NewMutableArrayView(arrayBridge{n: a.n}), nil
}

type arrayBridge struct {
	n *yaml.Node
}

func (b arrayBridge) Len() int { return len(b.n.Content) }

func (b arrayBridge) At(i int) docport.Adapter {
	if i < 0 || i >= len(b.n.Content) {
		return docport.Absent()
	}
	return Adapter{n: deref(b.n.Content[i])}
}

func (b arrayBridge) Append() docport.MutableAdapter {
	child := nullNode()
	b.n.Content = append(b.n.Content, child)
	return Adapter{n: child}
}

type objectBridge struct {
	n *yaml.Node
}

func (b objectBridge) Len() int { return len(b.n.Content) / 2 }

func (b objectBridge) MemberAt(i int) docport.ObjectMember {
	if i < 0 || 2*i+1 >= len(b.n.Content) {
		return docport.ObjectMember{Value: docport.Absent()}
	}
	return docport.ObjectMember{
		Key:   b.n.Content[2*i].Value,
		Value: Adapter{n: deref(b.n.Content[2*i+1])},
	}
}

func (b objectBridge) CreateKey(key string) docport.MutableAdapter {
	for i := 0; 2*i+1 < len(b.n.Content); i++ {
		if b.n.Content[2*i].Value == key {
			return Adapter{n: deref(b.n.Content[2*i+1])}
		}
	}
	child := nullNode()
	b.n.Content = append(b.n.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		child,
	)
	return Adapter{n: child}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
