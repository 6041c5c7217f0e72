package pinnacle

import (
	"slices"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SMS encodings.
const (
	EncodingGSM7  = "GSM-7"
	EncodingUTF16 = "UTF-16"
)

const (
	gsm7SingleSegment = 160
	gsm7MultiSegment  = 153
	utf16Single       = 70
	utf16Multi        = 67
)

// gsm7Basic is the GSM 03.38 default alphabet.
var gsm7Basic = map[rune]struct{}{}

// gsm7Extension holds the characters sent as an escape sequence, taking two septets.
var gsm7Extension = map[rune]struct{}{}

func init() {
	for _, r := range "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
		"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà" {
		gsm7Basic[r] = struct{}{}
	}
	for _, r := range "\f^{}\\[~]|€" {
		gsm7Extension[r] = struct{}{}
	}
}

// SegmentEstimate is the offline estimate of how an SMS body is split.
type SegmentEstimate struct {
	// Encoding is EncodingGSM7 or EncodingUTF16.
	Encoding string
	// Units is the number of septets for GSM-7 and of code units for UTF-16.
	Units    int
	Segments int
	// Unsupported lists, in order of first appearance, the characters which forced UTF-16.
	Unsupported []rune
}

// EstimateSegments estimates the number of segments text is sent as.
//
// Text made only of GSM-7 characters is sent as GSM-7: 160 septets fit a single segment
// and 153 fit each part of a longer message. Other text is sent as UTF-16 with 70 code
// units in a single segment and 67 per part. The API may count differently, for instance
// when splitting would break an escape sequence or a surrogate pair.
func EstimateSegments(text string) SegmentEstimate {
	var septets int
	var unsupported []rune
	for _, r := range text {
		if _, ok := gsm7Basic[r]; ok {
			septets++
			continue
		}
		if _, ok := gsm7Extension[r]; ok {
			septets += 2
			continue
		}
		if !slices.Contains(unsupported, r) {
			unsupported = append(unsupported, r)
		}
	}

	if len(unsupported) == 0 {
		return SegmentEstimate{
			Encoding: EncodingGSM7,
			Units:    septets,
			Segments: segmentCount(septets, gsm7SingleSegment, gsm7MultiSegment),
		}
	}

	units := utf16Units(text)
	return SegmentEstimate{
		Encoding:    EncodingUTF16,
		Units:       units,
		Segments:    segmentCount(units, utf16Single, utf16Multi),
		Unsupported: unsupported,
	}
}

func segmentCount(units, single, multi int) int {
	switch {
	case units == 0:
		return 0
	case units <= single:
		return 1
	}
	return (units + multi - 1) / multi
}

// utf16Units returns the number of UTF-16 code units of s.
func utf16Units(s string) int {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	b, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		// Invalid UTF-8 is replaced, one code unit per rune.
		return len([]rune(s))
	}
	return len(b) / 2
}
