// Package requirement decouples the declaration of named, typed parameters
// from their fulfilment and retrieval.
//
// A declarer builds a Set of named slots, optionally restricting each to a
// finite domain of permitted values or tagging it with a semantic subtype.
// A fulfiller later supplies concrete values per key, in any order, any
// number of times. A reader queries readiness with AllFulfilled and pulls
// typed values back out.
//
//	reqs := requirement.NewSet()
//	reqs.Add("input_file", requirement.WithSubtype("filename"))
//	reqs.Add("verbose", requirement.WithDomain(requirement.Bool(true), requirement.Bool(false)))
//
//	reqs.Fulfil("input_file", requirement.String("test.c"))
//	reqs.Fulfil("verbose", requirement.Bool(false))
//
//	if reqs.AllFulfilled() {
//		verbose, _ := reqs.BoolValue("verbose")
//		...
//	}
//
// Values are carried as a tagged union (string, bool, int, float); reads
// perform a checked variant match rather than an unchecked cast.
package requirement
