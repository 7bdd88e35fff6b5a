// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

/*
bio-sv-breakpoints infers structural variant breakpoints from the alignments
of assembled contigs. Each contig with two or more alignments is split into
chimeric pairs, and every pair is resolved into a novel adjacency: the
left-justified breakpoints, the strand switch, the homology or inserted
sequence at the junction, and the alternate haplotype.

Example:

  bio-sv-breakpoints -in contigs.bam -tsv-output events.tsv -adjacency-output events.adj

Adjacencies reported by several contigs are merged. The TSV lists one line
per distinct event in reference order.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/jianzuoyi/gatk/breakpoint"
)

var (
	inPath              = flag.String("in", "", "SAM or BAM file of contig alignments. Required")
	tsvOutputPath       = flag.String("tsv-output", "", "Path of the TSV event report. Required")
	adjacencyOutputPath = flag.String("adjacency-output", "", "If set, the distinct adjacencies are also written here in binary form")
	optsPath            = flag.String("opts", "", "YAML file of inference options, applied before the flags below")
	minAlignLength      = flag.Int("min-align-length", breakpoint.DefaultOpts.MinAlignLength, "Alignments whose unique reference span is shorter than this are not used as chimera ends")
	highMQ              = flag.Int("high-mq", breakpoint.DefaultOpts.HighMQThreshold, "Mapping quality below which an alignment is not trusted as a chimera end")
	parallelism         = flag.Int("parallelism", 0, "Maximum number of shards processed at once; 0 = runtime.NumCPU()")
	shards              = flag.Int("shards", 64, "Number of shards the contigs are split into")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -in contigs.bam -tsv-output events.tsv [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *inPath == "" || *tsvOutputPath == "" {
		usage()
		log.Fatal("-in and -tsv-output are required")
	}
	ctx := vcontext.Background()
	opts, err := loadOpts(ctx, *optsPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-align-length":
			opts.MinAlignLength = *minAlignLength
		case "high-mq":
			opts.HighMQThreshold = *highMQ
		case "parallelism":
			opts.Parallelism = *parallelism
		}
	})
	stats, err := run(ctx, runOpts{
		inPath:              *inPath,
		tsvOutputPath:       *tsvOutputPath,
		adjacencyOutputPath: *adjacencyOutputPath,
		shards:              *shards,
		opts:                opts,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %v", *inPath, stats)
	log.Debug.Printf("exiting")
}
