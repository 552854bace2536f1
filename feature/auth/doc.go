// Package auth implements accounts and sessions.
//
// Registration trims and case-insensitively deduplicates usernames,
// requires a minimum password length and stores bcrypt hashes. Both
// register and login issue a session token (uuid hex) valid for a
// configurable number of days.
//
// # Resolution
//
// Other features resolve identity through Service.Resolve, which accepts
// either a session token or a raw user id and returns a verified user id.
// Expired sessions are deleted as a side effect of being presented; the
// `sessions purge` command removes the rest in bulk.
//
// # HTTP Endpoints
//
//   - POST /api/auth/register
//   - POST /api/auth/login
package auth
