package services

import "bytes"

// StripCodeFence removes markdown code fence markers that some generated
// files are wrapped in. A leading "```json" is dropped, then a leading "```"
// is checked on what remains, then a trailing "```". Surrounding whitespace
// is trimmed before and after.
func StripCodeFence(raw []byte) []byte {
	b := bytes.TrimSpace(raw)
	if bytes.HasPrefix(b, []byte("```json")) {
		b = b[len("```json"):]
	}
	if bytes.HasPrefix(b, []byte("```")) {
		b = b[3:]
	}
	if bytes.HasSuffix(b, []byte("```")) {
		b = b[:len(b)-3]
	}
	return bytes.TrimSpace(b)
}
