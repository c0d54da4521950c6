// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# Request IDs and Recovery

The router wraps the whole mux:

	handler := middleware.RequestID(middleware.WithRecovery(middleware.CORS(mux)))

RequestID delegates to chi's middleware, honors an incoming
X-Request-Id header and echoes the id in the response. WithRecovery answers a panicking handler with a 500
JSON error carrying the panic value.

# CORS Middleware

Allows methods GET, POST, OPTIONS with the Content-Type header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ServerError(w, r, "failed to insert review", err)

ServerError logs err and returns its message in the 500 body.

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.AnalyzeRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
