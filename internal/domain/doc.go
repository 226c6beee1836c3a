// Package domain contains the structured command record extracted from
// free-text documentation, independent of the extraction service and of
// how records are persisted.
package domain
