// Package fetch declares the boundary to the external release-artifact
// collaborator that supplies the data catalog. No implementation lives
// here: wiring an HTTP client is out of scope for the core, and nothing in
// this module imports a network stack. The interface documents the shape a
// real client (a GitHub releases fetcher, in the reference implementation)
// would satisfy.
package fetch

import "context"

// ReleaseAsset describes one downloadable file attached to a release.
type ReleaseAsset struct {
	Name        string
	DownloadURL string
}

// ReleaseDescriptor describes a single release: its tag and the assets
// attached to it.
type ReleaseDescriptor struct {
	Tag    string
	Assets []ReleaseAsset
}

// ReleaseSource fetches release metadata and asset bodies from an external
// artifact store. The core consumes only this interface; it never
// constructs a concrete implementation.
type ReleaseSource interface {
	// LatestRelease returns the most recent release descriptor.
	LatestRelease(ctx context.Context) (ReleaseDescriptor, error)

	// FetchAsset downloads the body of a named asset, typically the
	// serialized catalog document.
	FetchAsset(ctx context.Context, asset ReleaseAsset) ([]byte, error)
}
