package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrInvalidSelector wraps selector compilation failures.
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrNoParent is returned when a sibling position is requested for a detached target.
	ErrNoParent = errors.New("target has no parent")
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses a full HTML document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Query returns the first element matching selector, or nil when nothing matches.
func (d *Document) Query(selector string) (*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return sel.MatchFirst(d.root), nil
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return sel.MatchAll(d.root), nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	return sel, nil
}

// ParseFragment parses markup in the context of a throwaway <div>, so nothing
// touches the live tree until the nodes are inserted. The returned nodes are
// detached and in source order.
func ParseFragment(markup string) ([]*html.Node, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(strings.TrimSpace(markup)), container)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}
	return nodes, nil
}

// InsertAdjacent places nodes relative to target at position.
//
// Every position anchors on a node captured before the first insertion (the
// target itself, its original first child, or its original next sibling), so
// the nodes always end up contiguous and in their given order.
func InsertAdjacent(target *html.Node, position Position, nodes []*html.Node) error {
	if target == nil {
		return errors.New("nil target")
	}

	switch position {
	case BeforeBegin:
		if target.Parent == nil {
			return ErrNoParent
		}
		for _, n := range nodes {
			target.Parent.InsertBefore(n, target)
		}
	case AfterBegin:
		anchor := target.FirstChild
		for _, n := range nodes {
			target.InsertBefore(n, anchor)
		}
	case BeforeEnd:
		for _, n := range nodes {
			target.AppendChild(n)
		}
	case AfterEnd:
		if target.Parent == nil {
			return ErrNoParent
		}
		anchor := target.NextSibling
		for _, n := range nodes {
			target.Parent.InsertBefore(n, anchor)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPosition, string(position))
	}

	return nil
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// OuterHTML renders a single node and its subtree.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}
