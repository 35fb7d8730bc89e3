package panelterm

import "unicode"

// graphemeCat is the grapheme-cluster category of a code point, the alphabet
// of the segmentation state machine in the output parser.
type graphemeCat int

const (
	gcAny graphemeCat = iota
	gcControl
	gcL
	gcV
	gcT
	gcLV
	gcLVT
	gcExtend
	gcSpacingMark
	gcRegionalIndicator
)

// graphemeCategory classifies a code point for cluster segmentation.
func graphemeCategory(r rune) graphemeCat {
	switch {
	case r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f):
		return gcControl
	case r >= 0x1100 && r <= 0x115f, r >= 0xa960 && r <= 0xa97c:
		return gcL
	case r >= 0x1160 && r <= 0x11a7, r >= 0xd7b0 && r <= 0xd7c6:
		return gcV
	case r >= 0x11a8 && r <= 0x11ff, r >= 0xd7cb && r <= 0xd7fb:
		return gcT
	case r >= 0xac00 && r <= 0xd7a3:
		if (r-0xac00)%28 == 0 {
			return gcLV
		}
		return gcLVT
	case r >= 0x1f1e6 && r <= 0x1f1ff:
		return gcRegionalIndicator
	case r == 0x200d, unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		return gcExtend
	case unicode.Is(unicode.Mc, r):
		return gcSpacingMark
	default:
		return gcAny
	}
}

// graphemeState tracks an in-progress multi-code-point cluster.
type graphemeState int

const (
	gsStart graphemeState = iota
	gsHangulL
	gsHangulLV
	gsHangulLVT
	gsRegional
)

// graphemeStep advances the cluster state machine by one category. It
// returns the next state and whether the code point joins the current
// cluster; a false result is a cluster break.
func graphemeStep(state graphemeState, cat graphemeCat) (graphemeState, bool) {
	switch state {
	case gsStart:
		switch cat {
		case gcL:
			return gsHangulL, true
		case gcV, gcLV:
			return gsHangulLV, true
		case gcT, gcLVT:
			return gsHangulLVT, true
		case gcRegionalIndicator:
			return gsRegional, true
		}
	case gsHangulL:
		switch cat {
		case gcL:
			return gsHangulL, true
		case gcV, gcLV:
			return gsHangulLV, true
		case gcLVT:
			return gsHangulLVT, true
		}
	case gsHangulLV:
		switch cat {
		case gcV:
			return gsHangulLV, true
		case gcT:
			return gsHangulLVT, true
		}
	case gsHangulLVT:
		if cat == gcT {
			return gsHangulLVT, true
		}
	case gsRegional:
		if cat == gcRegionalIndicator {
			return gsRegional, true
		}
	}
	return state, false
}
