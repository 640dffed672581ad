// Package document holds the in-memory HTML tree that fragments are spliced into.
//
// It wraps golang.org/x/net/html for parsing and rendering and uses cascadia
// for CSS selector resolution, so targets are addressed exactly the way a
// browser's querySelector would address them.
//
// # Insertion Positions
//
// Four positions mirror the standard "insert adjacent" semantics:
//   - beforebegin: before the target, as a sibling
//   - afterbegin: inside the target, before its first child
//   - beforeend: inside the target, after its last child (default)
//   - afterend: after the target, as a sibling
//
// Whatever the position, a multi-node fragment keeps its source order.
//
// # Usage
//
//	doc, _ := document.ParseString(page)
//	target, _ := doc.Query("#header")
//	nodes, _ := document.ParseFragment("<header>A</header><nav>B</nav>")
//	_ = document.InsertAdjacent(target, document.BeforeEnd, nodes)
package document
