// Package fstio implements the binary file format: the FstHeader common
// to every representation, alignment-aware section padding, and the
// Vector/Compact body codecs. Integers are little-endian throughout;
// strings are 32-bit length-prefixed; weight floats are bit-copied
// little-endian unconditionally. Header.ByteOrderMode is carried on
// disk (and bumps fst_type's Version to 2 when set to LittleEndian, see
// VectorVersions/CompactVersions) but is not yet consulted by any
// weight codec — every concrete weight's WriteTo/Read hardcodes
// binary.LittleEndian regardless of mode, so HostEndian and
// LittleEndian currently produce byte-identical files on every
// platform. The field exists so a later per-weight host-endian path (or
// a big-endian host) has somewhere to read its setting from without a
// further format bump.
package fstio
