package worldmap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"ink-and-realm/core/storage"
	"ink-and-realm/feature/worldmap/models"
)

// Archive writes versioned JSON snapshots of edited maps to object
// storage and prunes old versions. Archiving is best effort: failures are
// logged and never fail the edit that triggered them.
type Archive struct {
	client storage.Client
	bucket string
	keep   int
	logger *zap.Logger
}

// NewArchive creates a snapshot archive over the given storage client.
func NewArchive(client storage.Client, cfg storage.Config, logger *zap.Logger) *Archive {
	keep := cfg.KeepSnapshots
	if keep <= 0 {
		keep = 20
	}
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		keep:   keep,
		logger: logger,
	}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Store uploads one snapshot under maps/<id>/<timestamp>.json and prunes
// versions beyond the retention count.
func (a *Archive) Store(ctx context.Context, snap *models.MapSnapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		a.logger.Warn("Failed to encode map snapshot", zap.Int("map_id", snap.ID), zap.Error(err))
		return
	}

	name := fmt.Sprintf("%s%s.json", a.prefix(snap.ID), time.Now().UTC().Format("20060102T150405.000000000"))
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		a.logger.Warn("Failed to archive map snapshot", zap.Int("map_id", snap.ID), zap.Error(err))
		return
	}

	a.prune(ctx, snap.ID)
}

// Versions lists the archived object names for a map, newest first.
func (a *Archive) Versions(ctx context.Context, mapID int) ([]string, error) {
	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.prefix(mapID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// prune removes the oldest snapshots past the retention count. Timestamped
// names sort chronologically, so lexical order is version order.
func (a *Archive) prune(ctx context.Context, mapID int) {
	names, err := a.Versions(ctx, mapID)
	if err != nil {
		a.logger.Warn("Failed to list archived snapshots", zap.Int("map_id", mapID), zap.Error(err))
		return
	}
	if len(names) <= a.keep {
		return
	}
	for _, name := range names[a.keep:] {
		if err := a.client.RemoveObject(ctx, a.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			a.logger.Warn("Failed to prune archived snapshot", zap.String("object", name), zap.Error(err))
		}
	}
}

func (a *Archive) prefix(mapID int) string {
	return fmt.Sprintf("maps/%d/", mapID)
}
