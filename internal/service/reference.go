package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedReference = errors.New("malformed sale reference")

// SaleReference is the reference_id the storefront attaches to a PayPal
// purchase unit: e2a-<total>|<id>:<id>:...-<timestamp>.
type SaleReference struct {
	Raw       string
	Total     decimal.NullDecimal
	IDs       []string
	Timestamp string
}

// ParseSaleReference extracts the fossil ids from a reference. Ids are
// de-duplicated keeping their first position. An unreadable total is left
// invalid; it never changes the id set.
func ParseSaleReference(raw string) (*SaleReference, error) {
	parts := strings.Split(raw, "-")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q has no '-' separator", ErrMalformedReference, raw)
	}

	ref := &SaleReference{
		Raw:       raw,
		Timestamp: strings.Join(parts[2:], "-"),
	}

	pieces := strings.Split(parts[1], "|")
	if len(pieces) > 1 {
		if total, err := decimal.NewFromString(strings.TrimSpace(pieces[0])); err == nil {
			ref.Total = decimal.NewNullDecimal(total)
		}
	}

	idPart := pieces[len(pieces)-1]
	if strings.TrimSpace(idPart) == "" {
		return nil, fmt.Errorf("%w: %q lists no ids", ErrMalformedReference, raw)
	}

	seen := make(map[string]struct{})
	for _, id := range strings.Split(idPart, ":") {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: %q contains an empty id", ErrMalformedReference, raw)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ref.IDs = append(ref.IDs, id)
	}

	return ref, nil
}
