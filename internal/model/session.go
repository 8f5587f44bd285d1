package model

import "time"

// Session is open while EndDatetime is nil.
type Session struct {
	ID            int64      `db:"id" json:"id"`
	StartDatetime time.Time  `db:"start_datetime" json:"start_datetime"`
	EndDatetime   *time.Time `db:"end_datetime" json:"end_datetime"`
}

func (s *Session) IsOpen() bool {
	return s.EndDatetime == nil
}

type CreateSessionParams struct {
	StartDatetime time.Time
}
