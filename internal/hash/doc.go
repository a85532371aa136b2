// Package hash provides the CRC32-Castagnoli checksum that guards snapshot
// payloads and S3 uploads.
//
//	sum := hash.CRC32C(payload)           // snapshot header
//	hdr := hash.CRC32CBase64(payload)     // x-amz-checksum-crc32c
//
// CRC32C is not a cryptographic hash; it catches accidental corruption only.
package hash
