// Package blend implements Porter-Duff compositing on 8-bit pixels.
//
// Pixels are straight (non-premultiplied) alpha with values 0-255.
// Weights are carried at 255*255 scale so nothing is rounded to 8 bits
// until the final channel value.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Operator is a Porter-Duff compositing operator.
type Operator uint8

const (
	Clear           Operator = iota // 0
	Source                          // S
	Destination                     // D
	SourceOver                      // S + D*(1-Sa)
	DestinationOver                 // S*(1-Da) + D
	SourceIn                        // S*Da
	DestinationIn                   // D*Sa
	SourceOut                       // S*(1-Da)
	DestinationOut                  // D*(1-Sa)
	SourceAtop                      // S*Da + D*(1-Sa)
	DestinationAtop                 // S*(1-Da) + D*Sa
	Xor                             // S*(1-Da) + D*(1-Sa)
	Plus                            // min(S + D, 1)

	operatorCount
)

var operatorNames = [operatorCount]string{
	Clear:           "Clear",
	Source:          "Source",
	Destination:     "Destination",
	SourceOver:      "SourceOver",
	DestinationOver: "DestinationOver",
	SourceIn:        "SourceIn",
	DestinationIn:   "DestinationIn",
	SourceOut:       "SourceOut",
	DestinationOut:  "DestinationOut",
	SourceAtop:      "SourceAtop",
	DestinationAtop: "DestinationAtop",
	Xor:             "Xor",
	Plus:            "Plus",
}

// IsValid reports whether op is a known operator.
func (op Operator) IsValid() bool {
	return op < operatorCount
}

// String returns the operator name.
func (op Operator) String() string {
	if !op.IsValid() {
		return "Unknown"
	}
	return operatorNames[op]
}

// factors returns the Porter-Duff coverage factors Fa and Fb for op,
// scaled to 0-255, given source alpha sa and destination alpha da.
func (op Operator) factors(sa, da uint32) (fa, fb uint32) {
	switch op {
	case Clear:
		return 0, 0
	case Source:
		return 255, 0
	case Destination:
		return 0, 255
	case DestinationOver:
		return 255 - da, 255
	case SourceIn:
		return da, 0
	case DestinationIn:
		return 0, sa
	case SourceOut:
		return 255 - da, 0
	case DestinationOut:
		return 0, 255 - sa
	case SourceAtop:
		return da, 255 - sa
	case DestinationAtop:
		return 255 - da, sa
	case Xor:
		return 255 - da, 255 - sa
	case Plus:
		return 255, 255
	default:
		return 255, 255 - sa
	}
}

// Span composites src with dst into out, four bytes per pixel with alpha
// last. All three slices must have the same length, a multiple of 4. out
// may alias dst.
//
// Pixels are straight (non-premultiplied) alpha. Each channel is computed
// in one step from 32-bit weighted sums, so colours under low alpha are not
// quantized through an 8-bit premultiplied intermediate. Source,
// Destination and Clear copy or zero the pixels unchanged. Unknown
// operators behave as SourceOver.
func Span(op Operator, out, src, dst []byte) {
	switch op {
	case Clear:
		clear(out)
		return
	case Source:
		copy(out, src)
		return
	case Destination:
		copy(out, dst)
		return
	}
	for i := 0; i+3 < len(out); i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = pixel(op,
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// pixel composites one straight-alpha pixel.
//
// With weights wa = Sa*Fa and wb = Da*Fb (scale 255*255):
//
//	out alpha = (wa + wb) / 255
//	out color = (Sc*wa + Dc*wb) / (wa + wb)
//
// Plus clamps the coverage sum and the premultiplied colour sum first.
// Zero coverage yields transparent black.
func pixel(op Operator, sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	fa, fb := op.factors(uint32(sa), uint32(da))
	wa := uint32(sa) * fa
	wb := uint32(da) * fb
	sum := wa + wb
	if sum > maxCoverage {
		sum = maxCoverage
	}
	if sum == 0 {
		return 0, 0, 0, 0
	}
	channel := func(s, d byte) byte {
		n := uint32(s)*wa + uint32(d)*wb
		if n > 255*sum {
			n = 255 * sum
		}
		return byte((n + sum/2) / sum)
	}
	return channel(sr, dr), channel(sg, dg), channel(sb, db), byte(div255(uint16(sum)))
}
