package batch

import (
	"fmt"

	"github.com/isaflow/isaflow/pkg/isa"
)

// SetAttr assigns attr = val on every item in order. It stops at the first
// rejected assignment: earlier items keep the new value and the failing item
// keeps its previous one.
func SetAttr[T isa.AttrSetter](items []T, attr string, val any) error {
	for i, item := range items {
		if err := item.SetAttr(attr, val); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
