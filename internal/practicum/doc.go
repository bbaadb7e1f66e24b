// Package practicum talks to the Practicum homework review-status API and
// turns its loosely-structured answers into typed records.
//
// The split mirrors the failure taxonomy the poller cares about:
//   - Client.Fetch: transport + HTTP status (RequestError) and undecodable
//     bodies (ShapeError)
//   - CheckResponse: response shape (ShapeError)
//   - ParseRecord: per-record fields and verdict membership (RecordError)
//
// User-facing notification strings are rendered here verbatim; their wording
// is a contract with the humans reading the chat, do not edit it.
package practicum
