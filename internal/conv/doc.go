// Package conv converts between int and the fixed-width integer types used
// for bitmap ids and snapshot headers, rejecting values that would wrap.
package conv
