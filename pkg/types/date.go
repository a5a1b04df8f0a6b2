package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты на границе сервиса
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// Date календарная дата без времени и часового пояса.
// День недели и сравнения считаются только по году, месяцу и дню.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату из компонентов с проверкой корректности
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateFormat, year, month, day)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateFormat, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate парсит дату и паникует при ошибке. Только для тестов.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate строго парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	year, ok := atoiDigits(s[0:4])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	month, ok := atoiDigits(s[5:7])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	day, ok := atoiDigits(s[8:10])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	return NewDate(year, time.Month(month), day)
}

// DateOf возвращает календарную дату момента t в его собственной локации.
// Для "сегодня" площадки вызывающий код передает t.In(venueLocation).
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Year год
func (d Date) Year() int { return d.year }

// Month месяц
func (d Date) Month() time.Month { return d.month }

// Day день месяца
func (d Date) Day() int { return d.day }

// IsZero возвращает true, если дата не задана
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Weekday вычисляет день недели по алгоритму Сакамото.
// Не зависит от часового пояса и не создает time.Time.
func (d Date) Weekday() time.Weekday {
	offsets := [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := d.year
	if d.month < time.March {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + offsets[d.month-1] + d.day) % 7
	return time.Weekday(w)
}

// Compare возвращает -1, 0 или 1
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

// Before возвращает true, если d раньше other
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After возвращает true, если d позже other
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal возвращает true, если даты совпадают
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	t := time.Date(d.year, d.month, d.day+n, 12, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText реализует encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		// драйвер отдает DATE как полночь в UTC, берем компоненты как есть
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDateFormat, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func atoiDigits(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
