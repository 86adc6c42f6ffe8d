// Package server implements an MCP (Model Context Protocol) server for low-light enhancement.
//
// This package provides a JSON-RPC 2.0 server that exposes the enhancement
// pipeline through the MCP protocol, so MCP-compatible clients can inspect and
// brighten the dark regions of an image file.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Low-light Operations:
//   - image_low_light_mask: Dark-region mask and dark-pixel fraction
//   - image_enhance_low_light: Enhanced image, mask, lightness statistics,
//     optionally saved to disk
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// repeated calls on the same file skip disk I/O.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which names the failure kind
//     ("file not found" or "unreadable image") for load errors
package server
