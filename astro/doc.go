// Package astro maps birth details to the starting sounds tradition
// associates with the birth moment.
//
// The Calculator interface is the boundary the discovery pipeline depends
// on: given a complete birth descriptor it yields a Reading (stellar
// mansion, pada, starting syllables). The built-in Panchanga implementation
// is a deterministic mean-motion approximation; callers that need real
// ephemeris accuracy can supply their own Calculator.
package astro
