package handlers

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	errInvalidStartDate = errors.New("invalid start_date")
	errInvalidEndDate   = errors.New("invalid end_date")
	errEndBeforeStart   = errors.New("end_date cannot be before start_date")
)

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return dateOnly(time.Now().UTC())
}
