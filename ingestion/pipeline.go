package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docpipe/ai"
	"github.com/poiesic/docpipe/blob"
	"github.com/poiesic/docpipe/core"
	"github.com/poiesic/docpipe/searchindex"
	"github.com/poiesic/docpipe/storage"
)

const (
	// DefaultMaxRetries is the default attempt count for embedding and
	// upload calls.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default base delay for exponential backoff.
	DefaultRetryDelay = time.Second
)

// Pipeline orchestrates document ingestion: listing PDFs, extracting and
// chunking their text, embedding each chunk, and uploading the records
// to the search index.
//
// Documents are processed concurrently on a bounded worker pool; within
// one document processing is sequential, so chunk order is preserved.
type Pipeline struct {
	source    blob.Source
	extractor blob.Extractor
	embedder  ai.Embedder
	indexer   searchindex.Indexer
	manifest  storage.ManifestRepository // nil disables skip-unchanged

	pool       *ants.Pool
	chunkCfg   core.ChunkConfig
	dimension  int
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent document
// processing. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

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

// WithManifest enables skip-unchanged bookkeeping through the given
// repository.
func WithManifest(repo storage.ManifestRepository) Option {
	return func(p *Pipeline) error {
		p.manifest = repo
		return nil
	}
}

// WithChunkConfig overrides the chunking parameters.
// Default is core.DefaultChunkConfig().
func WithChunkConfig(cfg core.ChunkConfig) Option {
	return func(p *Pipeline) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		p.chunkCfg = cfg
		return nil
	}
}

// WithRetry sets the retry policy for embedding and upload calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxRetries = maxAttempts
		p.retryDelay = baseDelay
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. dimension is the embedding
// vector length the index is provisioned with; every embedding is
// validated against it before upload.
func NewPipeline(
	source blob.Source,
	extractor blob.Extractor,
	embedder ai.Embedder,
	indexer searchindex.Indexer,
	dimension int,
	opts ...Option,
) (*Pipeline, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if indexer == nil {
		return nil, ErrIndexerRequired
	}
	if dimension <= 0 {
		return nil, searchindex.ErrInvalidDimension
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
		source:     source,
		extractor:  extractor,
		embedder:   embedder,
		indexer:    indexer,
		pool:       pool,
		chunkCfg:   core.DefaultChunkConfig(),
		dimension:  dimension,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Report summarizes one ingestion run.
type Report struct {
	Documents int // documents fully ingested
	Chunks    int // index records written across all ingested documents
	Skipped   int // documents skipped (unchanged or empty)
	Failed    int // documents that errored; their reasons are logged
}

// Run provisions the index and ingests every PDF in the source container.
//
// A failing document is logged and counted but never aborts the run;
// context cancellation stops submission of further documents. The
// returned error covers run-level failures only (listing, provisioning,
// cancellation), not per-document ones.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if err := p.indexer.EnsureIndex(ctx, p.dimension); err != nil {
		return nil, err
	}

	objects, err := p.source.List(ctx)
	if err != nil {
		return nil, err
	}
	p.logger.Info("starting ingestion", "documents", len(objects))

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		report Report
	)

	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		obj := obj
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			outcome := p.processDocument(ctx, obj)

			mu.Lock()
			defer mu.Unlock()
			switch outcome.status {
			case statusIngested:
				report.Documents++
				report.Chunks += outcome.chunks
			case statusSkipped:
				report.Skipped++
			case statusFailed:
				report.Failed++
			}
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("error submitting document", "blob", obj.Name, "err", submitErr)
			mu.Lock()
			report.Failed++
			mu.Unlock()
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return &report, err
	}

	p.logger.Info("ingestion complete",
		"documents", report.Documents,
		"chunks", report.Chunks,
		"skipped", report.Skipped,
		"failed", report.Failed)
	return &report, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
