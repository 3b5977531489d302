// Package searchindex provides a thin client for the Azure AI Search
// REST API: API version discovery, index provisioning, and batched
// record upload.
//
// The data-plane API has no maintained Go SDK, so requests are plain
// JSON over HTTP. Uploads use the "upload" search action, which upserts
// by record key, making re-ingestion idempotent.
package searchindex
