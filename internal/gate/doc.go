// Package gate provides a reader/writer access gate for in-memory caches.
//
// Writes are submitted with PerformWrite and executed one at a time, in
// submission order, on a dedicated writer goroutine. Readers call ReadAndWait,
// which blocks until every write submitted before the call has completed and
// then runs the read under a shared lock. A reader therefore never observes a
// partially applied write and always observes the writes issued before it.
package gate
