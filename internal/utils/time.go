package utils

import (
	"fmt"
	"time"

	"github.com/AlenaMolokova/canteen/internal/constants"
)

// ParseDatetime accepts RFC3339 or the zoneless 2006-01-02T15:04:05 form;
// zoneless values are taken in server-local time.
func ParseDatetime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(constants.DatetimeLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
	}
	return t, nil
}
