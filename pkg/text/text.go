/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package text

import (
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const (
	UTF8 = "UTF-8"
)

var (
	expectedCharsets = []string{UTF8, "GB-18030"}
	decoderMap       = make(map[string]encoding.Encoding)
)

func init() {
	decoderMap["GB-18030"] = simplifiedchinese.GB18030
	// aliases
	decoderMap["GB18030"] = simplifiedchinese.GB18030
	decoderMap["GBK"] = simplifiedchinese.GB18030
	decoderMap["GB2312"] = simplifiedchinese.GB18030
}

// DetectCharset detects charset from bytes, restricted to the charsets we
// know how to decode.
func DetectCharset(bs []byte) string {
	if charsetResults, err := chardet.NewTextDetector().DetectAll(bs); err == nil {
		for _, expected := range expectedCharsets {
			for _, result := range charsetResults {
				if result.Charset == expected {
					return result.Charset
				}
			}
		}
	}

	return UTF8
}

// GetEncoding returns the decoder for a detected charset, nil for UTF-8 and
// unknown charsets.
func GetEncoding(charset string) encoding.Encoding {
	return decoderMap[charset]
}

// Decode converts raw journal payload bytes to a UTF-8 string. Valid UTF-8
// passes through untouched; otherwise the charset is detected and decoded,
// falling back to the raw bytes when decoding fails.
func Decode(bs []byte) string {
	if utf8.Valid(bs) {
		return string(bs)
	}

	charset := DetectCharset(bs)
	if enc := GetEncoding(charset); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(bs); err == nil {
			return string(decoded)
		}
	}

	return string(bs)
}
