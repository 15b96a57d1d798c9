package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB column helpers. Postgres stores the structured post body, string
// sets and embedded profile documents as jsonb.

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

type BlockSlice []Block

func (b BlockSlice) Value() (driver.Value, error) {
	if b == nil {
		b = BlockSlice{}
	}
	return json.Marshal(b)
}

func (b *BlockSlice) Scan(value interface{}) error {
	return scanJSON(value, b)
}

type Location struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type SocialNetworks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

func (s SocialNetworks) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SocialNetworks) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
