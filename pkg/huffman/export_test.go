package huffman

var (
	NextCode          = nextCode
	NextTableBitSize  = nextTableBitSize
	ReadCodeLengths   = readCodeLengths
	CodeLengthCodeOrd = kCodeLengthCodeOrder
)
