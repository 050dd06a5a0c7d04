// Package core contains the app shell: routing, message contracts and the key registry.
//
// Allowed here:
// - the route stack, navigation messages and the Navigator handle given to screens
// - notification and auth message plumbing into the screens
// - header, status bar and footer rendering
//
// Not allowed here:
// - concrete screen rendering or backend calls
package core
