// Package resolvers has implementations of diglib.Resolver: one which
// delegates to the system resolver and one which sends A and AAAA
// queries to a chosen DNS server.
//
// Both return addresses in the order they were received without
// duplicates. Failures are reported as *diglib.ResolutionError.
package resolvers
