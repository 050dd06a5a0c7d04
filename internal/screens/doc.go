// Package screens contains the secondary routes reachable from the restaurant list.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (detail, create, login)
//
// Not allowed here:
// - route tables and key registry ownership
package screens
