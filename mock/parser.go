package mock

import (
	"context"

	"github.com/kiyo-matsu/camelot"
)

var _ camelot.Parser = (*Parser)(nil)

// Parser is a mock implementation of camelot.Parser.
type Parser struct {
	ExtractTablesFn func(ctx context.Context, pagePath string, pageNumber int) (camelot.TableList, error)
}

func (p *Parser) ExtractTables(ctx context.Context, pagePath string, pageNumber int) (camelot.TableList, error) {
	return p.ExtractTablesFn(ctx, pagePath, pageNumber)
}

var _ camelot.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of camelot.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) (string, error)
}

func (d *Downloader) Download(ctx context.Context, url string) (string, error) {
	return d.DownloadFn(ctx, url)
}
