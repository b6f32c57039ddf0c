package id3v2

import "bytes"

var (
	unsyncPair = []byte{0xFF, 0x00}
	syncByte   = []byte{0xFF}
)

// RemoveUnsync reverses unsynchronisation by collapsing every 0xFF 0x00
// pair to 0xFF. Pairs are matched left to right without overlap, so
// FF 00 00 becomes FF 00.
func RemoveUnsync(b []byte) []byte {
	if !bytes.Contains(b, unsyncPair) {
		return b
	}
	return bytes.ReplaceAll(b, unsyncPair, syncByte)
}
