package pg

import (
	"database/sql/driver"
	"fmt"
)

// deleteFlag maps the soft-delete bool onto the TEXT column values
// 'TRUE' and 'FALSE'.
type deleteFlag bool

const (
	flagTrue  = "TRUE"
	flagFalse = "FALSE"
)

func (f deleteFlag) Value() (driver.Value, error) {
	if f {
		return flagTrue, nil
	}
	return flagFalse, nil
}

func (f *deleteFlag) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into delete flag", src)
	}

	switch s {
	case flagTrue:
		*f = true
	case flagFalse:
		*f = false
	default:
		return fmt.Errorf("unexpected delete flag %q", s)
	}
	return nil
}
