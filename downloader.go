package camelot

import "context"

// Downloader resolves a remote document locator to a local file before the
// extraction pipeline sees it. Download returns the path of the fetched
// copy; the caller owns the file and removes it when done.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}
