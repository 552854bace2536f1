// Package reconcile applies one client edit batch to a loaded map as a
// single linear pass and reports what changed.
//
// The pipeline is strictly ordered: layer replacement, feature additions,
// relationship upserts/updates/deletions, feature deletions with title
// cascade, feature field updates, then relationship cascade for deleted
// targets. Malformed individual items are skipped, never fatal; the rest
// of the batch proceeds.
package reconcile
