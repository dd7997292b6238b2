package domain

// Sheet is tabular input before any interpretation: a header row and the
// data rows below it, in file order.
type Sheet struct {
	Headers []string
	Rows    [][]string
}
