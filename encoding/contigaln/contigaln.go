// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package contigaln reads alignments of assembled contigs from a SAM or BAM
// file and groups them into breakpoint.AlignedContig values.
package contigaln

import (
	"context"
	"io"
	"sort"
	"strings"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/jianzuoyi/gatk/breakpoint"
)

// Contigs is the content of a contig alignment file.
type Contigs struct {
	// Dict is built from the file header.
	Dict *breakpoint.RefDict
	// Shards partitions the contigs by a hash of their names. Every
	// alignment of a contig lands in the same shard. Contigs within a shard
	// are sorted by name.
	Shards [][]breakpoint.AlignedContig
}

// Len returns the total number of contigs.
func (c *Contigs) Len() int {
	n := 0
	for _, s := range c.Shards {
		n += len(s)
	}
	return n
}

type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

// ShardOf returns the shard of the named contig.
func ShardOf(name string, nShards int) int {
	return int(seahash.Sum64([]byte(name)) % uint64(nShards))
}

// Read loads the primary and supplementary alignments in path. Files whose
// name ends in ".bam" are read as BAM, others as SAM. Unmapped and secondary
// records are skipped.
func Read(ctx context.Context, path string, nShards int) (_ *Contigs, err error) {
	if nShards <= 0 {
		nShards = 1
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer file.CloseAndReport(ctx, in, &err)

	var r recordReader
	if strings.HasSuffix(path, ".bam") {
		br, e := bam.NewReader(in.Reader(ctx), 1)
		if e != nil {
			return nil, errors.E(e, "bam", path)
		}
		defer func() {
			if e := br.Close(); e != nil && err == nil {
				err = e
			}
		}()
		r = br
	} else {
		sr, e := sam.NewReader(in.Reader(ctx))
		if e != nil {
			return nil, errors.E(e, "sam", path)
		}
		r = sr
	}

	records := make([][]*sam.Record, nShards)
	var nSkipped int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.E(err, "read", path)
		}
		if rec.Flags&(sam.Unmapped|sam.Secondary) != 0 {
			nSkipped++
			continue
		}
		i := ShardOf(rec.Name, nShards)
		records[i] = append(records[i], rec)
	}
	log.Printf("%s: skipped %d unmapped or secondary records", path, nSkipped)

	c := &Contigs{
		Dict:   breakpoint.NewRefDict(r.Header()),
		Shards: make([][]breakpoint.AlignedContig, nShards),
	}
	err = traverse.Each(nShards, func(i int) error {
		contigs, err := groupContigs(records[i])
		c.Shards[i] = contigs
		return err
	})
	if err != nil {
		return nil, errors.E(err, path)
	}
	return c, nil
}

// groupContigs builds one AlignedContig per read name.
func groupContigs(records []*sam.Record) ([]breakpoint.AlignedContig, error) {
	byName := map[string][]*sam.Record{}
	for _, r := range records {
		byName[r.Name] = append(byName[r.Name], r)
	}
	contigs := make([]breakpoint.AlignedContig, 0, len(byName))
	for name, recs := range byName {
		contig := breakpoint.AlignedContig{Name: name, Seq: contigSeq(recs)}
		for _, r := range recs {
			a, err := breakpoint.NewAlignmentIntervalFromRecord(r)
			if err != nil {
				return nil, err
			}
			contig.Alignments = append(contig.Alignments, a)
		}
		contigs = append(contigs, contig)
	}
	sort.Slice(contigs, func(i, j int) bool { return contigs[i].Name < contigs[j].Name })
	return contigs, nil
}

// contigSeq recovers the contig sequence from a record that carries all of
// it, i.e. one without hard clips. It returns nil when there is none.
func contigSeq(recs []*sam.Record) []byte {
	for _, r := range recs {
		if r.Seq.Length == 0 || hasHardClip(r.Cigar) {
			continue
		}
		seq := r.Seq.Expand()
		if r.Flags&sam.Reverse != 0 {
			breakpoint.ReverseComplement(seq, seq)
		}
		return seq
	}
	return nil
}

func hasHardClip(c sam.Cigar) bool {
	for _, op := range c {
		if op.Type() == sam.CigarHardClipped {
			return true
		}
	}
	return false
}
