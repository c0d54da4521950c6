// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to routes using Go 1.22+ method patterns.

# Routes

	GET  /health        → "OK"
	GET  /              → HTML page
	GET  /static/       → embedded JavaScript
	POST /analyze       → score and store a review
	GET  /reviews       → list reviews (?sentiment=)
	GET  /reviews/{id}  → one review
	GET  /download      → CSV export
	GET  /metrics       → classifier evaluation

Unknown paths return 404; known paths with the wrong method return 405.
*/
package router
