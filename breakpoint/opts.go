// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

// MaxPseudoHomologyEditDistance is the largest Levenshtein distance allowed
// between a contig-side copy of a tandem repeat unit and the first copy, and
// between the trailing pseudo-homology and the unit's prefix. Assembled
// repeat copies are rarely identical; a larger distance means the pair is
// not treated as a copy-number change. The limit does not scale with the
// unit length.
const MaxPseudoHomologyEditDistance = 2

// Opts controls how contigs are split into chimeric alignments.
type Opts struct {
	// MinAlignLength is the minimum reference span, after removing the
	// overlap with the neighboring interval on the contig, for an interval to
	// anchor a chimeric alignment.
	MinAlignLength int `yaml:"min_align_length"`
	// HighMQThreshold is the minimum mapping quality (inclusive) for an
	// interval to anchor a chimeric alignment.
	HighMQThreshold int `yaml:"high_mq_threshold"`
	// IncludeSameStrandInversions keeps same-strand pairs whose order on the
	// reference is the reverse of their order on the contig (e.g. dispersed
	// duplications).
	IncludeSameStrandInversions bool `yaml:"include_same_strand_inversions"`
	// FilterAmbiguous treats intervals nested inside a neighbor as insertion
	// mappings, and drops pairs that overlap too much on the contig.
	FilterAmbiguous bool `yaml:"filter_ambiguous"`
	// Parallelism is the number of contig shards processed concurrently. If
	// <= 0, runtime.NumCPU() is used.
	Parallelism int `yaml:"parallelism"`
}

// DefaultOpts is the default Opts value.
var DefaultOpts = Opts{
	MinAlignLength:              50,
	HighMQThreshold:             60,
	IncludeSameStrandInversions: true,
	FilterAmbiguous:             true,
}
