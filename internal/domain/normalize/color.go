package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// namedColors maps symbolic color names onto the target's &HAARRGGBB
// literal encoding (alpha, red, green, blue).
var namedColors = map[string]string{
	"black":      "&HFF000000",
	"blue":       "&HFF0000FF",
	"cyan":       "&HFF00FFFF",
	"dark gray":  "&HFF444444",
	"gray":       "&HFF888888",
	"green":      "&HFF00FF00",
	"light gray": "&HFFCCCCCC",
	"magenta":    "&HFFFF00FF",
	"none":       "&H00FFFFFF",
	"orange":     "&HFFFFC800",
	"pink":       "&HFFFFAFAF",
	"red":        "&HFFFF0000",
	"white":      "&HFFFFFFFF",
	"yellow":     "&HFFFFFF00",
	"default":    "&H00000000",
}

var (
	hexRGB  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexARGB = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
	literal = regexp.MustCompile(`^&H[0-9a-fA-F]{8}$`)
)

// EncodeColor converts a symbolic or hex color spec into the target's
// &H + 8 hex digit literal. Accepted inputs: a named color, #RRGGBB
// (opaque), #AARRGGBB, or an already-encoded &H literal.
func EncodeColor(spec string) (string, error) {
	switch {
	case literal.MatchString(spec):
		return "&H" + strings.ToUpper(spec[2:]), nil
	case hexRGB.MatchString(spec):
		return "&HFF" + strings.ToUpper(spec[1:]), nil
	case hexARGB.MatchString(spec):
		return "&H" + strings.ToUpper(spec[1:]), nil
	}
	if enc, ok := namedColors[strings.ToLower(spec)]; ok {
		return enc, nil
	}
	return "", fmt.Errorf("unrecognized color %q", spec)
}

// ColorInt converts a color spec into the signed 32-bit value the block
// editor uses for color sockets.
func ColorInt(spec string) (int32, error) {
	enc, err := EncodeColor(spec)
	if err != nil {
		return 0, err
	}
	argb, err := strconv.ParseUint(enc[2:], 16, 32)
	if err != nil {
		return 0, err
	}
	return int32(uint32(argb)), nil
}
