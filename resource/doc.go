// Package resource accounts for memory and I/O shared by several lists,
// caches and snapshot writers.
//
// A single Controller can be handed to any number of cache.LRU instances to
// enforce a global memory budget across them, and to snapshot.SaveFile and
// snapshot.LoadFile to throttle disk throughput. A nil *Controller is valid
// and imposes no limits.
package resource
