// Package domain holds the entities and error kinds shared across the
// service: supported external services, the error taxonomy for dispatch and
// credential flows, and the subpackages modeling actions, calls, capabilities,
// credentials, and users. It has no dependencies on other layers.
package domain
