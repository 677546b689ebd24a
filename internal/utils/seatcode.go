package utils // package utils provides helper functions for seat codes, tokens and promos

// Seat codes identify a seat inside a showtime grid.  Rows are mapped to
// letters (row 1 -> "A", row 2 -> "B", ... up to 26 rows) and columns are
// 1-based numbers, so the top-left seat of any grid is always "A1".

import "strconv"

// RowLetter returns the letter for a 1-based row index.  Callers must
// ensure 1 <= row <= 26; showtime validation enforces this bound.
func RowLetter(row int) string {
	return string(rune('A' + row - 1))
}

// SeatCode builds the code for a 1-based (row, col) position, e.g. (2, 4)
// becomes "B4".
func SeatCode(row, col int) string {
	return RowLetter(row) + strconv.Itoa(col)
}

// SeatCodes enumerates every seat code of a rows x cols grid in row-major
// order: A1..A<cols>, B1..B<cols>, and so on.
func SeatCodes(rows, cols int) []string {
	codes := make([]string, 0, rows*cols)
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			codes = append(codes, SeatCode(r, c))
		}
	}
	return codes
}

// SeatTypeFor classifies a seat code for layout rendering.  Disabled wins
// over VIP; anything else is a standard seat.
func SeatTypeFor(code string, vip, disabled map[string]struct{}) string {
	if _, ok := disabled[code]; ok {
		return "blocked"
	}
	if _, ok := vip[code]; ok {
		return "vip"
	}
	return "standard"
}
