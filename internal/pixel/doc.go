// Package pixel maps pixel-type codes to their stored sample width.
//
// Every stored sample in a volume has the same representation, identified by
// the header's mode field. The sample width drives all frame-size and offset
// arithmetic, so a code that is not in the table is always an error:
//
//	Code | Name          | Bytes
//	-----|---------------|------
//	0    | Byte          | 1
//	1    | Short         | 2
//	2    | Float         | 4
//	3    | ComplexShort  | 4
//	4    | Complex       | 8
//	5    | EMTOM         | 2
//	6    | UShort        | 2
//	7    | Long          | 4
//
// [AsIs] (-1) is the legacy "keep the stored type" request. It has a name but
// no width.
package pixel
