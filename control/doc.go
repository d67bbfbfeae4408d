// Package control provides the blocking structure for witness streams.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                  |
//  |---------------|---------------||---------------------|----------------------------------|
//  | 1 |                           || Data                | 2^7 = 128 values                 |
//  | 0 . 1 |                       || Data Size           | 2^6 = 64 bytes; 2^(64*8) values  |
//  | 0 . 0 . 1 |                   || Data + 1            | 2^(5+8) = 2^13 = 8192 values     |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 2^(4+8+8) = 2^20 = 1048576 values |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | Fields until Container End       |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | Closes Container Unbounded       |
//  |---------------|---------------||---------------------|----------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range.
//
// Data blocks allow for 7 bits of data to be encoded directly into the block.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data + 1 and Data + 2 blocks are two and three byte sequences whose first
// byte carries the high 5 and 4 bits of data respectively. The encoder
// always picks the smallest block that holds the data.
//
// Container Unbounded blocks start a run of fields that continues until the
// matching Container End. Containers may nest. A decoder that doesn't Enter a
// container skips it whole.
package control
