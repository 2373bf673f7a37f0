// Package render serializes virtual node trees to HTML. It backs the
// live server's initial page and the snapshot exporter.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/veldt-dev/veldt/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented output. Development only; it inflates the
	// output size.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a tree to an HTML string.
func (r *Renderer) ToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a tree to w.
func (r *Renderer) ToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if isVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		if err == nil && r.config.Pretty {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	pretty := r.config.Pretty && len(node.Children) > 0 && !isInlineElement(node.Tag)
	if pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if pretty {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", node.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// renderAttributes writes attributes sorted by key so output is stable.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := node.Props[k].(type) {
		case bool:
			// Boolean attributes render bare when true, not at all
			// when false.
			if v {
				if _, err := fmt.Fprintf(w, " %s", k); err != nil {
					return err
				}
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(fmt.Sprint(v))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}

// voidElements cannot have children and take no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements keep their children on one line in pretty mode.
var inlineElements = map[string]bool{
	"a": true, "b": true, "code": true, "em": true, "i": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}
