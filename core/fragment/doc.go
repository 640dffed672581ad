// Package fragment implements the fragment loader.
//
// A Loader retrieves HTML fragments from a source.Source, remembers their markup
// in a Cache, splices them into a document.Document and then rehydrates: it runs
// the registered capability hooks over the grown tree and publishes
// events.FragmentInserted.
//
// # Caching and De-duplication
//
// The Cache maps a fragment reference to its raw markup and may be shared by
// several loaders. Concurrent retrievals of the same uncached reference share a
// single in-flight fetch. The loaded-set is private to a loader and records the
// references already placed in its document, so a second Load of the same
// reference is a no-op until ClearCache is called.
//
// # Failures
//
// Load never returns an error. Retrieval failures are logged and leave the cache
// and loaded-set untouched, so a later call retries. In development mode a visible
// warning is inserted at the target instead of the fragment.
//
// # Declarative Loading
//
// Bootstrap scans the document for elements carrying data-component (and an
// optional data-position) and loads each of them into itself.
//
//	doc, _ := document.ParseString(page)
//	l := fragment.New(doc, src, logger, fragment.WithDevelopmentMode(true))
//	fragment.Bootstrap(ctx, l)
//	fmt.Println(doc.String())
package fragment
