// Package server implements the MCP (Model Context Protocol) server hosting
// responsive picture instances.
//
// This package provides a JSON-RPC 2.0 server that lets an MCP client create
// pictures from a set of image candidates, mount them on named host
// surfaces, report surface resizes, and render the currently selected source
// as HTML. Selection itself lives in the picture package; the server is the
// adapter that calls into it at the lifecycle points a rendering host would.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Lifecycle:
//   - picture_create: Build a picture from candidates or a manifest
//   - picture_attach: Mount on a surface, subscribe to resizes, first fit
//   - picture_resize: Report a surface size change
//   - picture_refit: Measure again after a measurement gap
//   - picture_detach: Unsubscribe and forget the picture
//
// Presentation:
//   - picture_state: Current selection, phase and settled flag
//   - picture_render: Current selection as HTML
//
// Stateless helpers:
//   - picture_select: One-off initial and best-fit selection
//   - picture_load_manifest: Parse a manifest and probe local files
//
// # Picture Registry
//
// Created pictures live in an in-memory registry until picture_detach or
// server shutdown. Every registered picture is detached when Serve returns, so
// no resize subscription outlives the server loop.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.LoadConfig())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
