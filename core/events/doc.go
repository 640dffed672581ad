// Package events provides an in-process notification bus.
//
// Publishers fire events without waiting for acknowledgement; every current
// subscriber is called synchronously in subscription order. The fragment
// loader publishes FragmentInserted after each successful insertion so that
// other collaborators can react to new content without a global event target.
package events
