package compose

import "image/color"

// parseHex converts a "#rgb" or "#rrggbb" hex string to a color. Unparseable
// or empty strings return fallback so a sparse brand palette never breaks a
// render.
func parseHex(s string, fallback color.NRGBA) color.NRGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		r, ok1 := hexNibble(s[0])
		g, ok2 := hexNibble(s[1])
		b, ok3 := hexNibble(s[2])
		if ok1 && ok2 && ok3 {
			return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}
		}
	case 6:
		var out [3]uint8
		ok := true
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(s[2*i])
			lo, ok2 := hexNibble(s[2*i+1])
			if !ok1 || !ok2 {
				ok = false
				break
			}
			out[i] = hi<<4 | lo
		}
		if ok {
			return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xff}
		}
	}
	return fallback
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
