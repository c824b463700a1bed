package errors

import "errors"

var ErrNoSheet = errors.New("workbook contains no sheets")
