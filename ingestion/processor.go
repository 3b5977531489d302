package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/docpipe/blob"
	"github.com/poiesic/docpipe/core"
	"github.com/poiesic/docpipe/storage"
)

type status int

const (
	statusIngested status = iota + 1
	statusSkipped
	statusFailed
)

type outcome struct {
	status status
	chunks int
}

// processDocument runs one blob through the full chain: manifest check,
// download, extract, clean, chunk, embed, upload, manifest update.
// Failures are logged here and reported through the outcome; they never
// propagate to other documents.
func (p *Pipeline) processDocument(ctx context.Context, obj blob.Object) outcome {
	logger := p.logger.With("blob", obj.Name)

	if p.unchanged(ctx, obj, logger) {
		logger.Info("skipping unchanged document", "etag", obj.ETag)
		return outcome{status: statusSkipped}
	}

	data, err := p.source.Download(ctx, obj.Name)
	if err != nil {
		logger.Error("error downloading document", "err", err)
		return outcome{status: statusFailed}
	}

	text, err := p.extractor.ExtractText(ctx, data)
	if err != nil {
		logger.Error("error extracting text", "err", err)
		return outcome{status: statusFailed}
	}

	cleaned := core.CleanText(text)
	if cleaned == "" {
		logger.Warn("skipping document with no extractable text")
		return outcome{status: statusSkipped}
	}

	doc := core.Document{
		ID:     core.DocumentIDFromBlobName(obj.Name),
		Source: obj.Name,
		Text:   cleaned,
	}

	records, err := p.buildRecords(ctx, doc)
	if err != nil {
		logger.Error("error preparing document records", "err", err)
		return outcome{status: statusFailed}
	}

	err = RetryWithBackoff(ctx, func() error {
		return p.indexer.Upload(ctx, records)
	}, p.maxRetries, p.retryDelay)
	if err != nil {
		logger.Error("error uploading records", "records", len(records), "err", err)
		return outcome{status: statusFailed}
	}

	p.saveManifest(ctx, obj, cleaned, len(records), logger)

	logger.Info("document ingested", "chunks", len(records))
	return outcome{status: statusIngested, chunks: len(records)}
}

// buildRecords chunks the document and embeds each chunk in order.
// Every embedding is validated against the configured index dimension.
func (p *Pipeline) buildRecords(ctx context.Context, doc core.Document) ([]core.IndexRecord, error) {
	seq, err := core.SplitText(doc.ID, doc.Text, p.chunkCfg)
	if err != nil {
		return nil, err
	}

	var records []core.IndexRecord
	for chunk := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var vector []float32
		err := RetryWithBackoff(ctx, func() error {
			var embedErr error
			vector, embedErr = p.embedder.EmbedText(ctx, chunk.Content)
			return embedErr
		}, p.maxRetries, p.retryDelay)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d: %w", chunk.Index, err)
		}

		if len(vector) != p.dimension {
			return nil, fmt.Errorf("%w: chunk %d produced %d values, index expects %d",
				core.ErrDimensionMismatch, chunk.Index, len(vector), p.dimension)
		}

		records = append(records, core.NewIndexRecord(chunk, vector, doc.Source))
	}

	return records, nil
}

// unchanged reports whether the manifest already records this blob at
// the same ETag. Manifest errors are treated as "not recorded".
func (p *Pipeline) unchanged(ctx context.Context, obj blob.Object, logger *slog.Logger) bool {
	if p.manifest == nil || obj.ETag == "" {
		return false
	}

	entry, err := p.manifest.Get(ctx, obj.Name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("error reading manifest, re-ingesting", "err", err)
		}
		return false
	}
	return entry.ETag == obj.ETag
}

// saveManifest records a successful ingestion. Manifest write failures
// only cost a redundant re-ingestion next run, so they are logged and
// swallowed.
func (p *Pipeline) saveManifest(ctx context.Context, obj blob.Object, text string, chunks int, logger *slog.Logger) {
	if p.manifest == nil {
		return
	}

	entry := &core.ManifestEntry{
		Blob:        obj.Name,
		ETag:        obj.ETag,
		ContentHash: core.ContentHash(text),
		Chunks:      chunks,
		IngestedAt:  time.Now().UTC(),
	}
	if err := p.manifest.Put(ctx, entry); err != nil {
		logger.Warn("error updating manifest", "err", err)
	}
}
