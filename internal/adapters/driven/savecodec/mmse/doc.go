// Package mmse implements driven.SaveCodec for lz4-framed JSON saves, the
// layout used by Motorsport Manager.
//
// A save is a little-endian header followed by two frames:
//
//	int32 magic    0x73326d6d
//	int32 version  4
//	int32 info compressed size, int32 info raw size
//	int32 data compressed size, int32 data raw size
//	info frame bytes
//	data frame bytes
//
// Each frame is an lz4 block holding a JSON payload. A frame whose
// compressed size equals its raw size is stored uncompressed. Payloads are
// compacted on both decode and encode; a save written with indented JSON
// therefore fails a resave check.
package mmse
