package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanState scans a single conductor state row. Times are stored as
// RFC3339 text and parsed here rather than relying on driver conversion.
func ScanState(scanner Scanner) (*State, error) {
	state := &State{}
	var startTime, endTime, updatedAt string

	err := scanner.Scan(
		&state.ID,
		&state.Mode,
		&startTime,
		&endTime,
		&state.StartDeltaMS,
		&state.EndDeltaMS,
		&state.ClockKey,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if state.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if state.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}
	if state.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return state, nil
}

// ScanView scans a single view row
func ScanView(scanner Scanner) (*View, error) {
	view := &View{}
	var startTime, endTime, createdAt string

	err := scanner.Scan(
		&view.ID,
		&view.Name,
		&view.Token,
		&view.Mode,
		&startTime,
		&endTime,
		&view.StartDeltaMS,
		&view.EndDeltaMS,
		&view.ClockKey,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if view.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if view.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}
	if view.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return view, nil
}

// ScanViews scans multiple view rows
func ScanViews(rows Rows) ([]*View, error) {
	var views []*View
	for rows.Next() {
		view, err := ScanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
