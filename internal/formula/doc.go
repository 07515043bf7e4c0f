// Package formula holds the pure calculations behind the area, insumo and
// analytics panels. Incomplete or invalid input yields "no result" (ok=false)
// rather than an error; callers treat that as an empty state.
package formula
