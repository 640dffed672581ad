package fragment

import (
	"context"
	"strings"

	"fragment-loader/core/document"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	// AttrComponent declares the fragment reference to load into an element.
	AttrComponent = "data-component"
	// AttrPosition optionally declares where the fragment goes.
	AttrPosition = "data-position"
)

// Bootstrap issues one load per element declaring data-component, each
// targeting the declaring element itself, and waits for all of them.
// It returns the number of loads issued.
func Bootstrap(ctx context.Context, l *Loader) int {
	requests := Declarations(l)
	l.LoadMany(ctx, requests)
	return len(requests)
}

// Declarations returns the load requests declared in the loader's document.
func Declarations(l *Loader) []Request {
	l.mu.Lock()
	nodes, err := l.doc.QueryAll("[" + AttrComponent + "]")
	if err != nil {
		l.mu.Unlock()
		l.logger.Error("Failed to scan for components", zap.Error(err))
		return nil
	}

	requests := make([]Request, 0, len(nodes))
	for _, n := range nodes {
		ref, _ := document.Attr(n, AttrComponent)
		if ref == "" {
			continue
		}

		declared, _ := document.Attr(n, AttrPosition)
		position, err := document.ParsePosition(declared)
		if err != nil {
			l.logger.Warn("Invalid component position, using beforeend",
				zap.String("ref", ref), zap.String("position", declared))
			position = document.BeforeEnd
		}

		requests = append(requests, Request{
			Ref:      ref,
			Target:   targetSelector(n, ref),
			Position: position,
		})
	}
	l.mu.Unlock()

	return requests
}

func targetSelector(n *html.Node, ref string) string {
	if n.Parent == nil || n.Parent.Type != html.ElementNode {
		return "body"
	}
	return "[" + AttrComponent + "=" + quote(ref) + "]"
}

// quote renders s as a CSS string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)
	return `"` + r.Replace(s) + `"`
}
