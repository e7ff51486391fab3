// Package blend implements the Porter-Duff compositing operators used by
// the layer passes.
//
// All operations work on premultiplied alpha bytes in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	Clear           Mode = iota // Result: 0 (clear destination)
	Source                      // Result: S (replace with source)
	Destination                 // Result: D (keep destination)
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	SourceIn                    // Result: S*Da
	DestinationIn               // Result: D*Sa
	SourceOut                   // Result: S*(1-Da)
	DestinationOut              // Result: D*(1-Sa)
)

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns sourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Destination:
		return blendDestination
	case SourceOver:
		return blendSourceOver
	case DestinationOver:
		return blendDestinationOver
	case SourceIn:
		return blendSourceIn
	case DestinationIn:
		return blendDestinationIn
	case SourceOut:
		return blendSourceOut
	case DestinationOut:
		return blendDestinationOut
	default:
		return blendSourceOver
	}
}

// blendClear clears the destination to transparent black.
func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// blendSource replaces destination with source.
func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendDestination keeps destination unchanged.
func blendDestination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return clampAdd(sr, MulDiv255(dr, invSa)),
		clampAdd(sg, MulDiv255(dg, invSa)),
		clampAdd(sb, MulDiv255(db, invSa)),
		clampAdd(sa, MulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return clampAdd(MulDiv255(sr, invDa), dr),
		clampAdd(MulDiv255(sg, invDa), dg),
		clampAdd(MulDiv255(sb, invDa), db),
		clampAdd(MulDiv255(sa, invDa), da)
}

// blendSourceIn shows source where destination is opaque.
// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return MulDiv255(sr, da), MulDiv255(sg, da), MulDiv255(sb, da), MulDiv255(sa, da)
}

// blendDestinationIn shows destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(dr, sa), MulDiv255(dg, sa), MulDiv255(db, sa), MulDiv255(da, sa)
}

// blendSourceOut shows source where destination is transparent.
// Formula: S * (1 - Da)
func blendSourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return MulDiv255(sr, invDa), MulDiv255(sg, invDa), MulDiv255(sb, invDa), MulDiv255(sa, invDa)
}

// blendDestinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// MulDiv255 multiplies two byte values and divides by 255 with proper
// rounding. Formula: (a * b + 127) / 255
// The +127 provides correct rounding (equivalent to adding 0.5 before
// truncation).
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// clampAdd adds two byte values with clamping to 255.
func clampAdd(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
