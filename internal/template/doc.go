// Package template renders the nginx server blocks emitted by the
// generator: the HTTPS server block, the HTTP redirect block, and the
// per-project file header. Templates are embedded at build time so the
// binary is self-contained.
//
// The templates own the exact block text, including the two QUIC
// listener markers the post-generation validator scans for. Section
// presence (API routes, frontend routes) is decided by the caller
// through the data it supplies, not here.
package template
