package assistant

import (
	"fmt"
	"reflect"
	"strings"
)

// Template is a parsed response template. The syntax is deliberately
// small: {{name}} substitutes a value looked up by dotted path,
// {{#name}}...{{/name}} renders its body once per element when the value
// is a list (each element becoming the innermost scope, addressable as
// {{.}} for scalars) and once when the value is truthy otherwise. Falsy
// or missing values render as the empty string, so rendering is total.
type Template struct {
	root *sectionNode
}

type node interface {
	render(sb *strings.Builder, scopes []any)
}

type textNode struct {
	text string
}

type varNode struct {
	path []string
}

type sectionNode struct {
	path  []string
	nodes []node
}

// ParseTemplate compiles a template string into its node tree.
func ParseTemplate(src string) (*Template, error) {
	root := &sectionNode{}
	stack := []*sectionNode{root}
	rest := src
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			break
		}
		closeIdx := strings.Index(rest[open:], "}}")
		if closeIdx < 0 {
			return nil, fmt.Errorf("unterminated tag near %q", clip(rest[open:]))
		}
		closeIdx += open

		if open > 0 {
			top := stack[len(stack)-1]
			top.nodes = append(top.nodes, &textNode{text: rest[:open]})
		}
		tag := strings.TrimSpace(rest[open+2 : closeIdx])
		rest = rest[closeIdx+2:]

		switch {
		case tag == "":
			return nil, fmt.Errorf("empty tag")
		case strings.HasPrefix(tag, "#"):
			sec := &sectionNode{path: splitPath(tag[1:])}
			top := stack[len(stack)-1]
			top.nodes = append(top.nodes, sec)
			stack = append(stack, sec)
		case strings.HasPrefix(tag, "/"):
			if len(stack) == 1 {
				return nil, fmt.Errorf("unmatched section close %q", tag)
			}
			closing := stack[len(stack)-1]
			if strings.Join(closing.path, ".") != strings.TrimSpace(tag[1:]) {
				return nil, fmt.Errorf("section close %q does not match open %q", tag[1:], strings.Join(closing.path, "."))
			}
			stack = stack[:len(stack)-1]
		default:
			top := stack[len(stack)-1]
			top.nodes = append(top.nodes, &varNode{path: splitPath(tag)})
		}
	}
	if len(stack) != 1 {
		open := stack[len(stack)-1]
		return nil, fmt.Errorf("unclosed section %q", strings.Join(open.path, "."))
	}
	if rest != "" {
		root.nodes = append(root.nodes, &textNode{text: rest})
	}
	return &Template{root: root}, nil
}

// MustParseTemplate is ParseTemplate for templates fixed at compile time.
func MustParseTemplate(src string) *Template {
	t, err := ParseTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Render evaluates the template against the given data scope.
func (t *Template) Render(data map[string]any) string {
	var sb strings.Builder
	for _, n := range t.root.nodes {
		n.render(&sb, []any{data})
	}
	return sb.String()
}

func (n *textNode) render(sb *strings.Builder, _ []any) {
	sb.WriteString(n.text)
}

func (n *varNode) render(sb *strings.Builder, scopes []any) {
	v, ok := lookup(n.path, scopes)
	if !ok || v == nil {
		return
	}
	switch tv := v.(type) {
	case string:
		sb.WriteString(tv)
	case bool:
		// booleans gate sections, they are not printable content
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

func (n *sectionNode) render(sb *strings.Builder, scopes []any) {
	v, ok := lookup(n.path, scopes)
	if !ok || !truthy(v) {
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			inner := append(scopes, item)
			for _, child := range n.nodes {
				child.render(sb, inner)
			}
		}
		return
	}
	inner := append(scopes, v)
	for _, child := range n.nodes {
		child.render(sb, inner)
	}
}

// lookup resolves a dotted path against the scope stack, innermost
// scope first. An empty path addresses the innermost scope itself.
func lookup(path []string, scopes []any) (any, bool) {
	if len(path) == 0 {
		if len(scopes) == 0 {
			return nil, false
		}
		return scopes[len(scopes)-1], true
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		v, ok := resolveKey(scopes[i], path[0])
		if !ok {
			continue
		}
		for _, seg := range path[1:] {
			v, ok = resolveKey(v, seg)
			if !ok {
				return nil, false
			}
		}
		return v, true
	}
	return nil, false
}

func resolveKey(scope any, key string) (any, bool) {
	m, ok := scope.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

func truthy(v any) bool {
	switch tv := v.(type) {
	case nil:
		return false
	case bool:
		return tv
	case string:
		return tv != ""
	case int:
		return tv != 0
	case int64:
		return tv != 0
	case float64:
		return tv != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

func splitPath(tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "." {
		return nil
	}
	return strings.Split(tag, ".")
}

func clip(s string) string {
	if len(s) > 20 {
		return s[:20]
	}
	return s
}
