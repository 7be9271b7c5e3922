package blend

// maxCoverage is full coverage, 255*255, in the weight scale used by pixel.
const maxCoverage = 255 * 255

// div255 computes round(x / 255) without division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// Exact for every product of two bytes (Jim Blinn, "Three Wrongs Make a
// Right"). The intermediate sum stays below 65408.
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}
