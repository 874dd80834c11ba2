package projection

import (
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
)

// ValidateSelection checks that every selected key exists in the table schema.
// Returns a ColumnNotFoundError for the first unknown key, in sorted order.
func ValidateSelection(s *schema.TableSchema, sel Selection) error {
	for _, key := range sel.Keys(s.Columns) {
		if err := s.RequireColumn(key); err != nil {
			return err
		}
	}
	return nil
}
