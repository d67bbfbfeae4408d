// Package witness reads and writes streams of zkfloat vectors.
//
// A stream is a sequence of vectors. Each vector is a Container Unbounded
// block holding one data block per float, closed by a Container End:
//
//  | cu | float | float | ... | ce | cu | float | ... | ce |
//
// Each float is its binary form (see zkfloat.Float's MarshalBinary: the
// zigzag mantissa followed by the biased exponent) written with the smallest
// control block that holds it:
//
//  | Mantissa         | Block     | Bytes   |
//  |------------------|-----------|---------|
//  | 0 .. 15          | Data + 1  | 2       |
//  | 16 .. 127        | Data Size | 3       |
//  | 128 .. 2047      | Data + 2  | 3       |
//  | 2048 and up      | Data Size | 4 .. 11 |
//  |------------------|-----------|---------|
//
// A vector may be empty. Streams have no header or trailer; a clean end of
// input between vectors ends the stream.
package witness
