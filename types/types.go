// Package types is a super-package that contains the primitive types shared by
// the ledger runtime, such as signing keys and their wire encodings.
//
// As a general rule to avoid import cycles inside this package:
//   - Only import parent packages, don't import child packages
//   - Importing from a "sibling" package (up the tree) is allowed.
package types
