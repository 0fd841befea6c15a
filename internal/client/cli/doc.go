// Package cli implements the interactive userdesk terminal client.
//
// # Overview
//
// The package wires the directory client, the page cache, the user service
// and the state store into a read–eval–print loop (see runREPL). The list
// view is purely derived state: search, company filter and email sort shape
// what is rendered, never what is cached.
//
// Mutations (add, edit, delete) go through the UserService, which applies
// them optimistically to the cached page, records activity entries at each
// lifecycle stage and rolls back on failure. The REPL only renders whatever
// the cache holds afterwards.
//
// Structure
//
//   - App:        holds dependencies plus page/search/filter/sort controls
//   - runREPL:    dispatch loop behind execIface for testability
//   - input.go:   prompt helpers with test seams
//   - list.go:    derived view (applyView) and table rendering
package cli
