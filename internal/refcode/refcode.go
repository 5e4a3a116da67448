// Package refcode turns sequential order ids into short public reference
// codes and back.
package refcode

import (
	"errors"

	"github.com/sqids/sqids-go"
)

var ErrInvalidCode = errors.New("invalid reference code")

type Encoder struct {
	sqids *sqids.Sqids
}

func New() (*Encoder, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &Encoder{sqids: s}, nil
}

func (e *Encoder) Encode(orderID int) (string, error) {
	if orderID < 0 {
		return "", ErrInvalidCode
	}
	return e.sqids.Encode([]uint64{uint64(orderID)})
}

// Decode returns the order id behind code. Codes that are not the canonical
// encoding of a single id are rejected.
func (e *Encoder) Decode(code string) (int, error) {
	ids := e.sqids.Decode(code)
	if len(ids) != 1 {
		return 0, ErrInvalidCode
	}
	canonical, err := e.sqids.Encode(ids)
	if err != nil || canonical != code {
		return 0, ErrInvalidCode
	}
	return int(ids[0]), nil
}
