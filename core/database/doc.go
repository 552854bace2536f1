// Package database handles connections to the relational store that holds
// users, sessions, maps and their features.
//
// Connect supports two drivers: MySQL for production deployments and
// sqlite for tests (":memory:") and small single-user installs. GORM's own
// query logging is silenced; outcomes are reported through the application
// logger instead.
//
// The inspector helpers (HasTable, GetTableColumns) back the `doctor`
// maintenance command, which verifies that the schema on disk matches what
// the current binary expects.
package database
