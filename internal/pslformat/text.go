package pslformat

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
)

const (
	bomUTF8    = "\xEF\xBB\xBF"
	bomUTF16BE = "\xFE\xFF"
	bomUTF16LE = "\xFF\xFE"
)

var (
	utf8Transform              = xunicode.UTF8BOM
	utf16LittleEndianTransform = xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM)
	utf16BigEndianTransform    = xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM)
)

// normalizeToUTF8Lines slices bs into one string per line of text.
//
// All returned strings contain only valid UTF-8; invalid byte
// sequences are replaced with the Unicode replacement character. The
// canonical PSL encoding is UTF-8 with Unix line endings and no BOM;
// normalizeToUTF8Lines additionally tolerates a leading BOM, UTF-16LE,
// and UTF-16BE, reporting each deviation as an error, and silently
// strips a trailing "\r" from each line so that Windows line endings
// do not defeat blank-line detection.
//
// normalizeToUTF8Lines always returns a usable result, even when it
// also returns errors.
func normalizeToUTF8Lines(bs []byte) ([]string, []error) {
	var errs []error

	enc := utf8Transform
	switch {
	case bytes.HasPrefix(bs, []byte(bomUTF8)):
		errs = append(errs, UTF8BOMError{})
	case bytes.HasPrefix(bs, []byte(bomUTF16BE)):
		enc = utf16BigEndianTransform
		errs = append(errs, InvalidEncodingError{"UTF-16BE"})
	case bytes.HasPrefix(bs, []byte(bomUTF16LE)):
		enc = utf16LittleEndianTransform
		errs = append(errs, InvalidEncodingError{"UTF-16LE"})
	default:
		enc = guessUTFVariant(bs)
		switch enc {
		case utf16BigEndianTransform:
			errs = append(errs, InvalidEncodingError{"UTF-16BE (guessed)"})
		case utf16LittleEndianTransform:
			errs = append(errs, InvalidEncodingError{"UTF-16LE (guessed)"})
		}
	}

	bs, err := enc.NewDecoder().Bytes(bs)
	if err != nil {
		errs = append(errs, err)
		return nil, errs
	}

	if len(bs) == 0 {
		return nil, errs
	}

	lines := strings.Split(string(bs), "\n")
	for i, line := range lines {
		if strings.ContainsRune(line, utf8.RuneError) {
			errs = append(errs, InvalidUTF8Error{SourceRange{Line: i + 1}})
		}
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, errs
}

// guessUTFVariant guesses the encoding of bs, in the absence of a
// BOM, by looking for a suspicious concentration of zero bytes at
// even or odd offsets (the signature of ASCII text encoded as
// UTF-16).
func guessUTFVariant(bs []byte) encoding.Encoding {
	const checkLimit = 200
	if len(bs) > checkLimit {
		bs = bs[:checkLimit]
	}

	evenZeros, oddZeros := 0, 0
	for i, b := range bs {
		if b != 0 {
			continue
		}
		if i%2 == 0 {
			evenZeros++
		} else {
			oddZeros++
		}

		const (
			decisionThreshold = 20
			utf16Threshold    = 15
		)
		if evenZeros+oddZeros < decisionThreshold {
			continue
		}
		if evenZeros > utf16Threshold {
			return utf16BigEndianTransform
		} else if oddZeros > utf16Threshold {
			return utf16LittleEndianTransform
		}
		return utf8Transform
	}

	return utf8Transform
}
