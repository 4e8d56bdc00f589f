// SPDX-License-Identifier: MIT

// Package rational implements exact fraction arithmetic over int64.
//
// A Rational is an immutable value type kept in lowest terms with a positive
// denominator; the canonical zero is 0/1. Every arithmetic method returns a
// fresh value, so Rationals can be copied and compared freely.
//
// ⚙️ Usage:
//
//	a := rational.MustNew(3, 7)
//	b, _ := rational.Parse("2/9")
//	fmt.Println(a.Add(b)) // 41/63
//
// Overflow policy:
//
//	The package does not promote to big integers. When an intermediate
//	product or sum leaves the int64 range the operation panics with an
//	*OverflowError wrapping ErrOverflow. Public algorithms in matrix, solve,
//	poly and eigen install rational.Recover at their boundary so callers see
//	an ordinary error instead.
package rational
