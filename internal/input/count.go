package input

import "math"

// SplitCount splits a leading numeric repeat count from a keystring.
//
// The count is the longest leading run of ASCII decimal digits; a leading
// '-' is not a digit, so negative counts cannot occur. Only the leading run
// is consumed: "10e4foo" splits into count 10 and remainder "e4foo". The
// boolean result distinguishes an explicit count of zero from no count at
// all. When supportsCount is false the keystring passes through unchanged.
func SplitCount(keystring string, supportsCount bool) (count int, remainder string, ok bool) {
	if !supportsCount {
		return 0, keystring, false
	}

	i := 0
	for i < len(keystring) && keystring[i] >= '0' && keystring[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, keystring, false
	}

	for _, c := range []byte(keystring[:i]) {
		digit := int(c - '0')
		if count > (math.MaxInt-digit)/10 {
			// Cap absurd counts instead of wrapping around.
			count = math.MaxInt
			continue
		}
		count = count*10 + digit
	}
	return count, keystring[i:], true
}
