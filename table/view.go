package table

import (
	"fmt"

	"github.com/viant/auditor/config"
)

// ViewColumns resolves view column names, custom columns take name and format from the view
func ViewColumns(view *config.View) ([]Column, error) {
	var result []Column
	for _, name := range view.Columns {
		column, err := ParseColumn(name)
		if err != nil {
			return nil, err
		}
		if column.Kind == Custom && column.Index < len(view.Custom) {
			custom := view.Custom[column.Index]
			if column.Format, err = ParsePropertyFormat(custom.Format); err != nil {
				return nil, fmt.Errorf("invalid custom column %s: %w", custom.Name, err)
			}
			column.Title = custom.Name
		}
		result = append(result, column)
	}
	return result, nil
}
