package persistence

// Magic is the four-byte file signature every AstraWeave save begins with.
var Magic = [4]byte{'A', 'W', 'S', '0'}

// FormatVersion is the current binary layout version. Bumped whenever the
// header or per-entity record shape changes incompatibly.
const FormatVersion uint32 = 1
