// Package kernel holds the primitives shared by every purchasing aggregate:
// the UUID identifier value object and the fixed-point money rounding rule.
package kernel
