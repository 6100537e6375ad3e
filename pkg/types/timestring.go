package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат метки времени слота: 12-часовой формат с периодом (например, "10:00 AM")
const TimeFormat = "3:04 PM"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString метка времени в пределах дня в формате "h:mm AM/PM".
// Хранится в каноническом виде, чтобы сравнение строк совпадало со сравнением времени.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку времени и возвращает каноничный TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(TimeFormat)), nil
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// parse возвращает time.Time с нулевой датой
func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}

// On возвращает момент времени: метка ts в день date (локация даты сохраняется)
func (ts TimeString) On(date time.Time) (time.Time, error) {
	t, err := ts.parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// AddMinutes возвращает метку времени, сдвинутую на minutes минут вперед
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", err
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// MinutesFromMidnight возвращает количество минут с полуночи
func (ts TimeString) MinutesFromMidnight() (int, error) {
	t, err := ts.parse()
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}
