// Package design defines the filter specification consumed by the response,
// pole-zero and FIR design packages.
//
// A [Specification] names a [Domain] (analog prototype, digital IIR or
// digital FIR), a [ResponseType] and either a [Topology] with an order (IIR
// and analog) or a window with a tap count (FIR). Enumerations are closed
// integer types; each Parse function documents its fallback for unknown
// names. [Specification.Validate] reports precondition violations before any
// numeric work is done.
package design
