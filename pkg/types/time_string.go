package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток с точностью до минуты в 24-часовом формате.
// Каноническое представление "HH:MM:SS", секунды всегда "00".
// Допустимо значение "24:00:00" - конец суток (для времени закрытия).
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString создает TimeString из часов и минут переданного времени.
// Часовой пояс не меняется - вызывающий код сам приводит время к нужной локации.
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes, valid: true}, nil
}

// MustTimeString парсит строку и паникует при ошибке. Только для тестов и констант.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewTimeStringFromString парсит время в формате "HH:MM" или "HH:MM:SS" (24 часа).
// Формат с AM/PM не принимается, ненулевые секунды считаются ошибкой.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		values[i] = v
	}

	hours, minutes := values[0], values[1]
	if minutes > 59 || hours > 24 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if len(values) == 3 && values[2] != 0 {
		return TimeString{}, fmt.Errorf("%w: seconds are not supported in %q", ErrInvalidTimeFormat, s)
	}
	if hours == 24 && minutes != 0 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return TimeString{minutes: hours*60 + minutes, valid: true}, nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes возвращает новое время, сдвинутое на n минут.
// Выход за пределы суток является ошибкой.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// Sub возвращает разницу t - other в минутах
func (t TimeString) Sub(other TimeString) int {
	return t.minutes - other.minutes
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если время совпадает
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes && t.valid == other.valid
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate проверяет, что время задано и лежит в пределах суток
func (t TimeString) Validate() error {
	if !t.valid {
		return fmt.Errorf("%w: empty time", ErrInvalidTimeFormat)
	}
	if t.minutes < 0 || t.minutes > MinutesPerDay {
		return fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, t.minutes)
	}
	return nil
}

// String возвращает каноническое представление "HH:MM:SS"
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:00", t.minutes/60, t.minutes%60)
}

// Short возвращает представление "HH:MM"
func (t TimeString) Short() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Label возвращает подпись для отображения в 12-часовом формате, например "2:30 PM".
// Используется только для показа пользователю, никогда для сравнений.
func (t TimeString) Label() string {
	if !t.valid {
		return ""
	}
	hours := (t.minutes / 60) % 24
	minutes := t.minutes % 60

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	h12 := hours % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minutes, suffix)
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		// драйвер отдает TIME как время в нулевом году, "24:00:00" как полночь следующего дня
		if v.Year() == 0 && v.YearDay() == 2 && v.Hour() == 0 && v.Minute() == 0 {
			*t = TimeString{minutes: MinutesPerDay, valid: true}
			return nil
		}
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}
