package report

import (
	"fmt"

	"gorm.io/gorm"
)

// Result carries whatever columns a report produced; the frontend renders
// it as a table without knowing the shape up front.
type Result struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Run executes one catalog report. Reports are pure reads; running one
// never changes store state. param is only consulted for parameterized
// reports.
func Run(db *gorm.DB, r Report, param string) (*Result, error) {
	var args []any
	if r.Param != "" {
		args = append(args, param)
	}

	rows, err := db.Raw(r.SQL, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("report %q failed: %w", r.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("report %q failed: %w", r.Name, err)
	}

	result := &Result{Name: r.Name, Columns: cols, Rows: make([][]any, 0)}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("report %q failed: %w", r.Name, err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, vals)
	}
	return result, rows.Err()
}
