package worldgen

// Circle returns a d by d boolean mask of a disc of diameter d blocks.
// Even diameters center the disc on a block corner, odd diameters on a
// block center; a block is inside when its center is within the radius.
func Circle(d int) [][]bool {
	if d <= 0 {
		return nil
	}
	if d%2 == 0 {
		r := d / 2
		// one quarter, mirrored both ways; block (row,col) center sits
		// at (row+0.5, col+0.5) from the disc center, and the half
		// terms cancel in integer form
		quarter := make([][]bool, r)
		for row := range quarter {
			quarter[row] = make([]bool, r)
			for col := range quarter[row] {
				quarter[row][col] = row*row+row+col*col+col < r*r
			}
		}
		return mirror(quarter, false)
	}
	r := (d + 1) / 2
	// quarter includes the central row and column, radius r-0.5
	quarter := make([][]bool, r)
	for row := range quarter {
		quarter[row] = make([]bool, r)
		for col := range quarter[row] {
			quarter[row][col] = row*row+col*col <= r*r-r
		}
	}
	return mirror(quarter, true)
}

// mirror reflects a quarter mask into the full disc. When shared is true
// the quarter's first row and column lie on the disc axes and are not
// duplicated.
func mirror(quarter [][]bool, shared bool) [][]bool {
	var full [][]bool
	for _, row := range quarter {
		var m []bool
		if shared {
			for i := len(row) - 1; i >= 1; i-- {
				m = append(m, row[i])
			}
		} else {
			for i := len(row) - 1; i >= 0; i-- {
				m = append(m, row[i])
			}
		}
		m = append(m, row...)
		full = append(full, m)
	}
	if shared {
		return append(flip(full[1:]), full...)
	}
	return append(flip(full), full...)
}

func flip(rows [][]bool) [][]bool {
	out := make([][]bool, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := make([]bool, len(rows[i]))
		copy(row, rows[i])
		out = append(out, row)
	}
	return out
}
