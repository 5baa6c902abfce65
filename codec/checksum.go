// checksum.go
/*
fixwire — FIX protocol wire codec
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package codec

// computeCheckSum sums every byte of b modulo 256. Byte overflow wraps,
// which is exactly the FIX CheckSum definition.
func computeCheckSum(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum += c
	}
	return sum
}

// parseDecimal reads a strict non-negative ASCII decimal. No signs, no
// whitespace, no empty input.
func parseDecimal(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > maxTag { // cheap overflow guard, far beyond any real value
			return 0, false
		}
	}
	return n, true
}

// parseDeclaredCheckSum reads a tag-10 value: decimal 0–255.
func parseDeclaredCheckSum(b []byte) (int, bool) {
	n, ok := parseDecimal(b)
	if !ok || n > 255 {
		return 0, false
	}
	return n, true
}
