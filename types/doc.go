// Package types converts INX wire records into validated domain values.
//
// Every constructor is pure: it reads only its argument, performs no I/O and
// keeps no state, so conversions may run concurrently without coordination.
// A constructor returns either a fully populated value or the first error it
// finds; required fields are checked for presence, in declared order, before
// any field is decoded.
package types
