package models

// PrintArea is a rectangular cell range, 1-based and inclusive on both ends.
type PrintArea struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// Valid reports whether the area spans at least one cell.
func (a PrintArea) Valid() bool {
	return a.R1 >= 1 && a.C1 >= 1 && a.R1 <= a.R2 && a.C1 <= a.C2
}
