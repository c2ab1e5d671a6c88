package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/utamaduni/catalog"
	"github.com/poiesic/utamaduni/core"
)

// releaseTimeout bounds how long Release waits for in-flight uploads.
const releaseTimeout = 5 * time.Second

// Submitter is the part of the catalog the pipeline writes through.
type Submitter interface {
	PrepareAsset(ctx context.Context, sub catalog.AssetSubmission) (core.Asset, error)
	AttachFile(ctx context.Context, asset *core.Asset, f catalog.File) error
	AppendAssets(ctx context.Context, assets ...core.Asset) error
	DiscardAttachment(ctx context.Context, asset *core.Asset)
}

var _ Submitter = (*catalog.Catalog)(nil)

// Pipeline imports bundles of submissions.
type Pipeline struct {
	catalog  Submitter
	pool     *ants.Pool
	readFile func(string) ([]byte, error)
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of concurrent attachment uploads.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an import pipeline writing through c.
func NewPipeline(c Submitter, opts ...Option) (*Pipeline, error) {
	if c == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalog:  c,
		pool:     pool,
		readFile: os.ReadFile,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Failure is an entry that was not imported.
type Failure struct {
	Index int
	Title string
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("entry %d (%q): %v", f.Index, f.Title, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Report is the outcome of an import.
type Report struct {
	// Imported lists the appended assets in bundle order.
	Imported []core.Asset
	Failed   []Failure
}

// ImportBundle loads the bundle at path and imports it.
func (p *Pipeline) ImportBundle(ctx context.Context, path string) (*Report, error) {
	entries, err := LoadBundle(path)
	if err != nil {
		return nil, err
	}
	return p.Import(ctx, entries)
}

// Import validates entries, uploads their attachments concurrently and
// appends the successful ones in input order. An error is returned only when
// the context is cancelled or the final save fails; in both cases nothing is
// appended and stored attachments are removed.
func (p *Pipeline) Import(ctx context.Context, entries []Entry) (*Report, error) {
	report := &Report{}

	prepared := make([]core.Asset, len(entries))
	errs := make([]error, len(entries))
	for i, e := range entries {
		sub, err := e.submission()
		if err == nil {
			prepared[i], err = p.catalog.PrepareAsset(ctx, sub)
		}
		errs[i] = err
	}

	var wg sync.WaitGroup
	for i, e := range entries {
		if errs[i] != nil || e.File == "" {
			continue
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			errs[i] = p.attach(ctx, &prepared[i], e.File)
		}
		if err := p.pool.Submit(task); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit upload: %w", err)
		}
	}
	wg.Wait()

	for i, e := range entries {
		if errs[i] != nil {
			p.logger.Warn("skipping bundle entry", "index", i, "title", e.Title, "err", errs[i])
			report.Failed = append(report.Failed, Failure{Index: i, Title: e.Title, Err: errs[i]})
			continue
		}
		report.Imported = append(report.Imported, prepared[i])
	}

	if err := ctx.Err(); err != nil {
		p.discard(report.Imported)
		return nil, err
	}
	if err := p.catalog.AppendAssets(ctx, report.Imported...); err != nil {
		p.discard(report.Imported)
		return nil, err
	}

	p.logger.Info("bundle imported", "entries", len(entries), "imported", len(report.Imported), "failed", len(report.Failed))
	return report, nil
}

func (p *Pipeline) attach(ctx context.Context, asset *core.Asset, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := p.readFile(path)
	if err != nil {
		return err
	}
	return p.catalog.AttachFile(ctx, asset, catalog.File{Name: asset.OriginalFilename, Data: data})
}

// discard removes attachments stored for assets that will not be appended.
func (p *Pipeline) discard(assets []core.Asset) {
	for i := range assets {
		p.catalog.DiscardAttachment(context.Background(), &assets[i])
	}
}

// Release stops the worker pool, waiting for in-flight uploads.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool == nil {
		return
	}
	if err := p.pool.ReleaseTimeout(releaseTimeout); err != nil {
		p.logger.Warn("worker pool did not stop in time", "err", err)
	}
}
