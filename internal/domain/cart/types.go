package cart

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown cart kind")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrItemNotFound     = errors.New("cart item not found")
	ErrCurrencyMismatch = errors.New("product currency does not match cart currency")
)

// Kind separates the main purchase cart from the sample-request cart.
// The two are independent slots; mutations never cross kinds.
type Kind string

const (
	KindMain   Kind = "main"
	KindSample Kind = "sample"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMain, KindSample:
		return true
	default:
		return false
	}
}

func Kinds() []Kind {
	return []Kind{KindMain, KindSample}
}
