package service

import (
	"errors"
	"time"
)

var errDataInvalida = errors.New("data inválida, use o formato AAAA-MM-DD")

// parseData reads a YYYY-MM-DD field from a request.
func parseData(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errDataInvalida
	}
	return d, nil
}

// hoje is the client-clock "today" truncated to a date, in UTC like all
// stored dates.
func hoje() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
