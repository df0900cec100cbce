// Package domain contains the core types of the clip client: records,
// jobs, list queries and pages, organizations, and the error taxonomy
// shared by all controllers.
package domain
