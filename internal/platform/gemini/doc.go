// Package gemini implements the extraction.Extractor interface using
// Google's Gemini API to parse free-text command documentation into
// structured records.
package gemini
