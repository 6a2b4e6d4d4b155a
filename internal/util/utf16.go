package util

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// UTF16Slice returns the substring covering [offset, offset+length) in UTF-16
// code units. ok is false when the range falls outside text or splits a
// surrogate pair.
func UTF16Slice(text string, offset, length int) (string, bool) {
	if offset < 0 || length < 0 {
		return "", false
	}
	end := offset + length
	start, stop := -1, -1
	units := 0
	for i, r := range text {
		if units == offset && start == -1 {
			start = i
		}
		if units == end {
			stop = i
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	if units == offset && start == -1 {
		start = len(text)
	}
	if stop == -1 && units == end {
		stop = len(text)
	}
	if start == -1 || stop == -1 {
		return "", false
	}
	return text[start:stop], true
}
