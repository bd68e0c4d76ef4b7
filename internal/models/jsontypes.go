package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The tracker stores a handful of document-shaped values (string lists,
// measurement maps, plan schedules) in single text columns. Each wrapper
// implements driver.Valuer and sql.Scanner so gorm can persist it on both
// sqlite and postgres.

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch s := src.(type) {
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// StringList is a JSON-encoded list of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonValue([]string(l)) }
func (l *StringList) Scan(src interface{}) error  { return jsonScan(src, l) }

// FloatMap is a JSON-encoded map of named measurements (chest, waist, ...).
type FloatMap map[string]float64

func (m FloatMap) Value() (driver.Value, error) { return jsonValue(map[string]float64(m)) }
func (m *FloatMap) Scan(src interface{}) error  { return jsonScan(src, m) }
