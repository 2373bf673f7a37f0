package render

import (
	"strings"
	"testing"

	"github.com/veldt-dev/veldt/pkg/vdom"
)

func TestRenderElementWithText(t *testing.T) {
	r := New(Config{})
	html, err := r.ToString(vdom.El("div", vdom.Text("hello")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if html != "<div>hello</div>" {
		t.Errorf("unexpected output: %q", html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	r := New(Config{})
	node := vdom.El("input").WithProps(vdom.Props{"type": "text", "id": "name", "disabled": true})
	html, err := r.ToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if html != `<input disabled id="name" type="text">` {
		t.Errorf("unexpected output: %q", html)
	}
}

func TestRenderBooleanAttrFalseOmitted(t *testing.T) {
	r := New(Config{})
	html, err := r.ToString(vdom.El("input").WithProps(vdom.Props{"checked": false}))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "checked") {
		t.Errorf("false boolean attribute rendered: %q", html)
	}
}

func TestRenderEscaping(t *testing.T) {
	r := New(Config{})

	html, err := r.ToString(vdom.Text(`<script>alert("x")</script>`))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("text content not escaped: %q", html)
	}

	html, err = r.ToString(vdom.El("div").WithProps(vdom.Props{"title": `a"b`}))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "&quot;") {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	r := New(Config{})
	html, err := r.ToString(vdom.Fragment(vdom.Text("a"), vdom.El("b", vdom.Text("c"))))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if html != "a<b>c</b>" {
		t.Errorf("unexpected output: %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	r := New(Config{Pretty: true})
	node := vdom.El("ul", vdom.El("li", vdom.Text("x")))
	html, err := r.ToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output has no newlines: %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	r := New(Config{})
	html, err := r.ToString(nil)
	if err != nil || html != "" {
		t.Errorf("nil node should render empty, got %q, %v", html, err)
	}
}
