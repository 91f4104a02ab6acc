package reconcile

import "unicode"

// arabicBlock is the Unicode Arabic block, U+0600 to U+06FF.
var arabicBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06FF, Stride: 1}},
}

// ScriptDetector reports whether text is written in the target script.
type ScriptDetector func(text string) bool

// ContainsArabic reports whether text holds any rune from the Arabic block.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(arabicBlock, r) {
			return true
		}
	}
	return false
}
