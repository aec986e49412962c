// Package kernel provides core domain primitives for the chef-booking system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// Identity comparison across the whole system goes through UUID.IsEqual; raw
// string comparison of identities is never used. These primitives are immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
