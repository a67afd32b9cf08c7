// Package refresh regenerates the meaning embeddings of existing name
// records after an embedding model change.
//
// The corpus is walked in insertion order in batches, with progress
// tracking, retry logic with exponential backoff, and vector normalization
// so similarity search can use plain dot products.
package refresh
