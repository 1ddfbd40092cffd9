// Sha256sum prints the SHA-256 digest of each named file, or of standard
// input when no file (or "-") is given, in the same layout as coreutils
// sha256sum.
//
// Files are read fully into memory before hashing.
package main
