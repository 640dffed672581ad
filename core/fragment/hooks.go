package fragment

import (
	"fragment-loader/core/document"
)

// Hook re-scans the document for elements of one capability and activates
// those that are not active yet. It returns how many it activated.
// Hooks run with the loader's lock held and must not call back into the loader.
type Hook func(doc *document.Document) int

// ActivateHook builds a Hook that marks every element matching selector with
// attr="true" unless it already carries attr.
func ActivateHook(selector, attr string) Hook {
	return func(doc *document.Document) int {
		nodes, err := doc.QueryAll(selector)
		if err != nil {
			return 0
		}

		activated := 0
		for _, n := range nodes {
			if _, ok := document.Attr(n, attr); ok {
				continue
			}
			document.SetAttr(n, attr, "true")
			activated++
		}
		return activated
	}
}

// Capabilities maps the known capability names to their hooks.
var Capabilities = map[string]Hook{
	"tooltip": ActivateHook(`[data-bs-toggle="tooltip"]`, "data-tooltip-active"),
	"popover": ActivateHook(`[data-bs-toggle="popover"]`, "data-popover-active"),
	"reveal":  ActivateHook(`[data-aos]`, "data-aos-active"),
}
