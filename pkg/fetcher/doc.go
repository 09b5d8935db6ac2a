// Package fetcher downloads one URL to one file.
//
// Client issues a GET and streams the body in 8 KiB chunks unless the
// status is 4xx or 5xx.
// Failures come back as *errors.Error tagged network, http_status, io or
// request. Fetcher wraps Client with the destination file and the console:
// it writes through a storage.PendingFile so an incomplete body never
// lands under the destination name, then prints either
//
//	Downloaded: <path>
//
// or
//
//	Error downloading <url>: <message>
//
// There are no retries. Without a configured timeout a request may block
// for as long as the server keeps the connection open.
package fetcher
