package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date es una fecha de calendario (sin hora) que serializa como "YYYY-MM-DD".
// Se usa para expire_date y alert_date, donde la hora no tiene significado.
type Date struct {
	time.Time
}

// NewDate construye un Date a partir de un time.Time (se conserva solo el día).
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parsea "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD" y también timestamps RFC3339 (se descarta la hora).
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	d.Time = t.Truncate(24 * time.Hour)
	return nil
}
