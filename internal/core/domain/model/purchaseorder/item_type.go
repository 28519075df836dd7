package purchaseorder

import (
	"fmt"
	"strings"

	"purchasing/internal/pkg/errs"
)

// ItemType tells how a line item identifies what is being bought.
type ItemType string

const (
	// Standard lines reference a catalogue product.
	Standard ItemType = "STANDARD"
	// Manual lines are typed in by hand, optionally linked to a product.
	Manual ItemType = "MANUAL"
	// Other covers charges that are not goods, e.g. installation.
	Other ItemType = "OTHER"
)

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t ItemType) Validate() error {
	switch t {
	case Standard, Manual, Other:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%q is not a valid item type", string(t)))
	}
}

func (t ItemType) String() string {
	return string(t)
}
