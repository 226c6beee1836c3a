// Package extraction defines the boundary between the application core and
// the remote language-model service that turns free-text command
// documentation into structured records. It abstracts the details of the
// LLM API integration (Gemini), so the orchestration layer can be tested
// against fake extractors without touching the network.
package extraction
