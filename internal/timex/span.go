package timex

// byteToCharIndex maps the byte offsets Go's regexp package reports into
// character (rune) offsets, satisfying the requirement that TIMEX spans are
// always in character units regardless of what unit the regex engine's
// match offsets are natively expressed in.
type byteToCharIndex struct {
	offsets []int // offsets[charIndex] = byte offset of that character
}

func newByteToCharIndex(s string) *byteToCharIndex {
	offsets := make([]int, 0, len(s)+1)

	byteIdx := 0
	for _, r := range s {
		offsets = append(offsets, byteIdx)
		byteIdx += runeLen(r)
	}

	offsets = append(offsets, byteIdx) // sentinel: one past the last character

	return &byteToCharIndex{offsets: offsets}
}

// char returns the character index corresponding to a given byte offset.
// byteOffset must be one of the offsets produced by ranging over the same
// string (regexp match boundaries always are).
func (b *byteToCharIndex) char(byteOffset int) int {
	lo, hi := 0, len(b.offsets)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if b.offsets[mid] < byteOffset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// charLen returns the number of characters in the indexed string.
func (b *byteToCharIndex) charLen() int {
	return len(b.offsets) - 1
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
