// Package pages serves pages assembled from their declared fragments.
//
// Every request gets its own document and fragment loader, while all loaders
// share one process-wide cache, so a fragment is retrieved from the source once
// and then reused by every page that declares it.
//
// # HTTP Endpoints
//
//   - GET /pages/* : Assembles and returns the page (index page for the root).
//   - GET /fragments/* : Returns the raw markup of a single fragment.
//   - GET /cache : Lists cached fragment references.
//   - DELETE /cache : Clears the shared cache.
package pages
