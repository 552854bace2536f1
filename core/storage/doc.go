// Package storage provides an abstraction over the object storage service
// that the map snapshot archive writes to.
//
// It wraps the MinIO Go client behind a narrow Client interface covering
// only the operations the archive needs: bucket checks and creation,
// uploading snapshot objects, and listing/removing old snapshots during
// retention pruning. The interface keeps the archive unit-testable with
// the testify mock in core/storage/mocks.
//
// The archive is optional: when storage is disabled in configuration no
// client is constructed at all.
package storage
