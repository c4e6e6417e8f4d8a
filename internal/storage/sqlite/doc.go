// Package sqlite persists calculator widget values in a SQLite database.
//
// Values are stored one row per key, so the display survives process
// restarts and a fresh engine opened on the same file sees the last value.
package sqlite
