package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// number is a numeric request field sent either as a JSON number or as a
// string. It is kept raw at decode time and converted on use.
type number struct {
	raw string
	set bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*n = number{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = number{raw: strings.TrimSpace(s), set: true}
		return nil
	}
	*n = number{raw: string(b), set: true}
	return nil
}

func (n number) int64(field string) (int64, error) {
	if !n.set {
		return 0, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(n.raw)
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("%s: %s is not a valid integer", field, n.raw)
	}
	return d.IntPart(), nil
}

func (n number) decimal(field string) (decimal.Decimal, error) {
	if !n.set {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(n.raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %s is not a valid amount", field, n.raw)
	}
	return d, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts RFC 3339 timestamps and the shorter forms HTML date
// inputs produce. Zone-less values are taken as UTC. Blank means unset.
func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("salesDate: invalid date %q", value)
}
