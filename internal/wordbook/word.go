// Package wordbook provides the in-memory word store, its derived meaning and
// date groupings, and the wrong-answer remediation list for a user's
// vocabulary record.
package wordbook

import "time"

// UnspecifiedDate is used when a word record carries no learning date.
const UnspecifiedDate = "unspecified"

// Word is a single English-Chinese vocabulary pair with its mastery score.
// The JSON field names match the remote user record written by earlier
// clients, so records round-trip unchanged.
type Word struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
	Score   int    `json:"scoreValue"`
	Date    string `json:"date"`
}

// CurrentDate returns today's date in the YYYY-MM-DD format used by word records.
func CurrentDate() string {
	return time.Now().Format("2006-01-02")
}
