// Package source provides the document stores fragments are retrieved from.
//
// Every store implements Source: given a fragment reference it returns the
// fragment's markup, or an error. A missing fragment is reported as ErrNotFound
// (HTTP 404 responses satisfy errors.Is(err, ErrNotFound) too), any other
// non-success HTTP status as *StatusError.
//
// # Backends
//
//   - http: GET base_url + ref; the body is decoded from its declared charset.
//   - storage: object prefix + ref in a MinIO/S3 bucket.
//   - database: row of the "fragments" table, keyed by ref.
//   - dir: file below a local directory.
//
// # Usage
//
//	src, err := source.New(cfg.Source, source.Deps{Storage: store, Bucket: cfg.Storage.Bucket})
//	markup, err := src.Fetch(ctx, "/parts/header.html")
package source
