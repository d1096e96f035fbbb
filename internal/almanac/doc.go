// Package almanac reads and writes the input documents of the seed locator.
//
// # Text format
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//
// The line holding "seeds:" supplies the seed tokens. Each line holding
// "map:" opens a stage named by the text before the marker; the following
// lines up to a blank line or end of input are its mappings, written as
// "destination source length". Whether the seed tokens are single seeds or
// start/length pairs is chosen by the caller, never by the document.
//
// # YAML format
//
// The same content can be exchanged as YAML:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    mappings:
//	      - destination: 50
//	        source: 98
//	        length: 2
package almanac
