// Package extract orchestrates the table-extraction pipeline: it resolves a
// page selection, splits the source document into single-page documents with
// corrected orientation, runs the selected parser strategy over each page,
// and aggregates the results.
package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kiyo-matsu/camelot"
	"golang.org/x/sync/errgroup"
)

// DefaultFlavor is the parser strategy used when none is selected.
const DefaultFlavor = "lattice"

// ParserFactory builds the parser strategy named by flavor with the given
// options. Unknown flavors fail with EINVALID.
type ParserFactory func(flavor string, opts camelot.ParserOptions) (camelot.Parser, error)

// Extractor drives the extraction pipeline for one document at a time.
type Extractor struct {
	Engine    camelot.Engine
	Analyzer  camelot.Analyzer
	NewParser ParserFactory

	// Downloader, when set, resolves URL sources to local files before
	// extraction. Without it URL sources fail with EINVALID.
	Downloader camelot.Downloader

	// Concurrency bounds parallel per-page processing. Values below 1 mean
	// sequential. Pages share one read-only document session.
	Concurrency int

	// Logger receives structured progress events. Nil disables logging.
	Logger *slog.Logger
}

// Options configures one Parse call.
type Options struct {
	// Pages is the page-selection expression. Empty means "1".
	Pages string

	// Password is the document credential. Empty means none.
	Password string

	// Flavor names the parser strategy ("lattice" or "stream").
	// Empty means DefaultFlavor.
	Flavor string

	// Parser is forwarded verbatim to the selected parser strategy.
	Parser camelot.ParserOptions

	// Layout is forwarded to layout analysis during rotation detection.
	Layout camelot.LayoutOptions
}

// Parse extracts tables from the document at source, which is a local
// filesystem path or, when a Downloader is configured, a URL.
//
// Failures on any page abort the whole call: no partial results are
// returned. The scoped temporary directory holding per-page artifacts is
// removed before Parse returns, on success and on failure alike.
func (e *Extractor) Parse(ctx context.Context, source string, opts Options) (camelot.TableList, error) {
	if isURL(source) {
		if e.Downloader == nil {
			return nil, camelot.Errorf(camelot.EINVALID, "no downloader configured for URL source %q", source)
		}
		local, err := e.Downloader.Download(ctx, source)
		if err != nil {
			return nil, err
		}
		defer remove(local)
		source = local
	}
	if !strings.EqualFold(filepath.Ext(source), ".pdf") {
		return nil, camelot.Errorf(camelot.EUNSUPPORTED, "file format not supported: %q", filepath.Ext(source))
	}

	flavor := opts.Flavor
	if flavor == "" {
		flavor = DefaultFlavor
	}
	parser, err := e.NewParser(flavor, opts.Parser)
	if err != nil {
		return nil, err
	}

	// The session is opened lazily so that the default page spec never
	// touches the document during resolution.
	var doc camelot.Document
	open := func() error {
		if doc != nil {
			return nil
		}
		var err error
		doc, err = e.Engine.Open(ctx, source, opts.Password)
		return err
	}
	defer func() {
		if doc != nil {
			_ = doc.Close()
		}
	}()

	pages, err := camelot.ResolvePages(opts.Pages, func() (int, error) {
		if err := open(); err != nil {
			return 0, err
		}
		return doc.PageCount(ctx)
	})
	if err != nil {
		return nil, translate(err)
	}
	if err := open(); err != nil {
		return nil, translate(err)
	}

	scratch, err := NewScratchDir("")
	if err != nil {
		return nil, err
	}
	defer scratch.Close()

	e.log().InfoContext(ctx, "extraction started",
		"source", source, "pages", len(pages), "flavor", flavor)

	concurrency := e.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]camelot.TableList, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, n := range pages {
		g.Go(func() error {
			page, err := e.extractPage(gctx, doc, n, scratch)
			if err != nil {
				return err
			}
			if err := e.correctRotation(gctx, page, opts.Layout); err != nil {
				return translate(err)
			}
			tables, err := parser.ExtractTables(gctx, page.Path, n)
			if err != nil {
				return translate(err)
			}
			results[i] = tables
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all camelot.TableList
	for _, tables := range results {
		all = append(all, tables...)
	}
	all.Sort()

	e.log().InfoContext(ctx, "extraction finished", "tables", len(all))
	return all, nil
}

// extractPage copies page n of the open session into a brand-new
// single-page document at the canonical scratch path, preserving the source
// page's geometry and discarding its recorded rotation.
func (e *Extractor) extractPage(ctx context.Context, doc camelot.Document, n int, scratch *ScratchDir) (*ExtractedPage, error) {
	info, err := doc.Page(ctx, n)
	if err != nil {
		return nil, pageError(n, err)
	}
	path := scratch.PagePath(n)
	if err := doc.ExtractPage(ctx, n, path); err != nil {
		return nil, pageError(n, err)
	}
	return &ExtractedPage{
		Number: n,
		Path:   path,
		Width:  info.Width,
		Height: info.Height,
		State:  StateUnknown,
	}, nil
}

// pageError classifies a failure to read or copy one source page.
func pageError(n int, err error) error {
	if camelot.IsClosedOrEncrypted(err) {
		return notDecrypted()
	}
	return camelot.Errorf(camelot.EEXTRACTION, "page %d: %v", n, err)
}

// translate re-signals the engine's generic closed-or-encrypted failure as
// the domain's not-decrypted error; every other failure passes through
// unchanged so callers can inspect its original kind.
func translate(err error) error {
	if camelot.IsClosedOrEncrypted(err) {
		return notDecrypted()
	}
	return err
}

func notDecrypted() error {
	return camelot.Errorf(camelot.ENOTDECRYPTED, "file has not been decrypted")
}

func (e *Extractor) log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
