// Package alarm contains core domain types for the alarm scheduler.
//
// It defines Submission (the validated input contract at the submitter
// boundary), Alarm (one pending record with an absolute deadline), Expiry
// (the exactly-once notification emitted when an alarm fires), Snapshot
// (the listing view) and Actor (who issued a request).
package alarm
