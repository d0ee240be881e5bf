package hollerith

// charToCode is the IBM 7094 6-bit BCD (Hollerith) code for every character
// the filter can produce except '+' and '-', which have no entry here and
// encode as space. Values are the historical card-punch codes, not a
// dense 0..45 enumeration: there are real gaps (e.g. between '*' and space)
// inherited from the original hardware table, and last_chunk_as_bcd's test
// vectors are only satisfied by these exact values.
var charToCode = map[byte]uint64{
	'0': 000, '1': 001, '2': 002, '3': 003, '4': 004,
	'5': 005, '6': 006, '7': 007, '8': 010, '9': 011,
	'=': 012, '\'': 013,
	'A': 021, 'B': 022, 'C': 023, 'D': 024, 'E': 025,
	'F': 026, 'G': 027, 'H': 030, 'I': 031,
	'.': 033, ')': 034,
	'J': 041, 'K': 042, 'L': 043, 'M': 044, 'N': 045,
	'O': 046, 'P': 047, 'Q': 050, 'R': 051,
	'$': 053, '*': 054,
	' ': 060, '/': 061,
	'S': 062, 'T': 063, 'U': 064, 'V': 065, 'W': 066,
	'X': 067, 'Y': 070, 'Z': 071,
	',': 073, '(': 074,
}

// LastChunkAsBCD returns the 36-bit packed BCD value of the last 6
// characters of word, per §4.1: words of 6 or fewer characters are
// right-padded with spaces; longer words take the chunk starting at
// (len-1)/6*6 and are likewise right-padded. Bytes with no entry in
// charToCode encode as space; this includes '+' and '-', which the filter
// does emit.
func LastChunkAsBCD(word string) uint64 {
	var chunk string
	if len(word) > 6 {
		start := (len(word) - 1) / 6 * 6
		chunk = word[start:]
	} else {
		chunk = word
	}
	for len(chunk) < 6 {
		chunk += " "
	}

	var d uint64
	for i := 0; i < 6; i++ {
		code, ok := charToCode[chunk[i]]
		if !ok {
			code = charToCode[' ']
		}
		d = d<<6 | code
	}
	return d
}

// Hash reproduces the IBM 7094's sign-magnitude mid-square hash: square the
// low 35 bits of d, then take the middle n bits (0 <= n <= 15). The engine
// uses Hash(LastChunkAsBCD(lastWord), 2) to pick one of a MEMORY rule's four
// transformations.
func Hash(d uint64, n uint) uint64 {
	masked := d & (1<<35 - 1)
	squared := masked * masked
	shifted := squared >> (35 - n/2)
	return shifted & (1<<n - 1)
}
