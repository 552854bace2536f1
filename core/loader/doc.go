// Package loader wires feature packages into the application.
//
// Each feature (auth, worldmap, share) implements the Feature interface
// and is registered with the Manager at startup; LoadAll then mounts every
// enabled feature's routes in registration order.
package loader
