package eltetrado

import "bytes"

var atomTableMarker = []byte("_atom_site")

// IsCIF reports whether the buffer is in the tag/table-based format: true
// iff any line begins with the atom table marker. A malformed tag-based
// document lacking the marker is classified fixed-column and fails there.
func IsCIF(buf []byte) bool {
	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		if bytes.HasPrefix(line, atomTableMarker) {
			return true
		}
	}
	return false
}
