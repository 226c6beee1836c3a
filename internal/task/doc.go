// Package task implements the concurrent extraction run: an orchestrator
// that fans a batch of documentation strings out to the extraction service
// under a fixed concurrency cap, retries each item with exponential
// backoff, and reassembles the results in input order.
package task
