// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package breakpoint infers structural-variant breakpoints from assembled
// contigs whose alignment to the reference is split into chimeric pieces.
//
// The flow is
//
//   AlignedContig --ParseContig--> []ChimericAlignment
//   ChimericAlignment --Infer--> Inference (breakpoints + Complication)
//   Inference --NewNovelAdjacency--> *NovelAdjacency
//
// All reference and contig coordinates are 1-based and inclusive.  A
// chimera and the reverse complement of the same contig yield equal
// adjacencies: inference works on the forward-strand representation of
// the chimera, and homology, inserted and alternate-haplotype sequences are
// reported on that strand.
package breakpoint
