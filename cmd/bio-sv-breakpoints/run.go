// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/tsv"
	"github.com/jianzuoyi/gatk/breakpoint"
	"github.com/jianzuoyi/gatk/encoding/adjacency"
	"github.com/jianzuoyi/gatk/encoding/contigaln"
	"gopkg.in/yaml.v2"
)

type runOpts struct {
	inPath              string
	tsvOutputPath       string
	adjacencyOutputPath string
	shards              int
	opts                breakpoint.Opts
}

// runStats counts what happened to the input. Fields are updated atomically.
type runStats struct {
	contigs     int64
	chimeras    int64
	ambiguous   int64
	inputErrors int64
	adjacencies int64
	events      int64
}

func (s *runStats) String() string {
	return fmt.Sprintf("contigs: %d, chimeras: %d, ambiguous: %d, input errors: %d, adjacencies: %d, events: %d",
		s.contigs, s.chimeras, s.ambiguous, s.inputErrors, s.adjacencies, s.events)
}

// loadOpts reads breakpoint options from a YAML file. Fields missing from
// the file keep their default values. An empty path yields the defaults.
func loadOpts(ctx context.Context, path string) (breakpoint.Opts, error) {
	opts := breakpoint.DefaultOpts
	if path == "" {
		return opts, nil
	}
	data, err := file.ReadFile(ctx, path)
	if err != nil {
		return opts, errors.E(err, "read options", path)
	}
	if err := yaml.UnmarshalStrict(data, &opts); err != nil {
		return opts, errors.E(err, "parse options", path)
	}
	return opts, nil
}

func run(ctx context.Context, o runOpts) (*runStats, error) {
	contigs, err := contigaln.Read(ctx, o.inPath, o.shards)
	if err != nil {
		return nil, err
	}
	stats := &runStats{}
	collector := breakpoint.NewEventCollector(contigs.Dict)
	parallelism := o.opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	parallelism = min(parallelism, len(contigs.Shards))
	// Worker i handles shards i, i+parallelism, ...
	err = traverse.Each(parallelism, func(jobIdx int) error {
		for i := jobIdx; i < len(contigs.Shards); i += parallelism {
			for _, contig := range contigs.Shards[i] {
				processContig(contig, contigs.Dict, o.opts, collector, stats)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	events := collector.Events()
	stats.events = int64(len(events))

	if err := writeTSV(ctx, o.tsvOutputPath, events); err != nil {
		return nil, err
	}
	if o.adjacencyOutputPath != "" {
		if err := writeAdjacencies(ctx, o.adjacencyOutputPath, events); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// processContig adds the adjacencies of one contig to the collector. An
// input error drops the rest of the contig.
func processContig(contig breakpoint.AlignedContig, dict *breakpoint.RefDict, opts breakpoint.Opts, collector *breakpoint.EventCollector, stats *runStats) {
	atomic.AddInt64(&stats.contigs, 1)
	chimeras, err := breakpoint.ParseContig(contig, dict, opts)
	if err != nil {
		atomic.AddInt64(&stats.inputErrors, 1)
		log.Error.Printf("contig %s: %v", contig.Name, err)
		return
	}
	for _, ca := range chimeras {
		atomic.AddInt64(&stats.chimeras, 1)
		adj, err := breakpoint.NewNovelAdjacency(ca, contig.Seq, dict)
		switch {
		case err == nil:
			atomic.AddInt64(&stats.adjacencies, 1)
			collector.Add(adj, contig.Name)
		case breakpoint.IsAmbiguousChimera(err):
			atomic.AddInt64(&stats.ambiguous, 1)
			log.Debug.Printf("contig %s: %v", contig.Name, err)
		default:
			atomic.AddInt64(&stats.inputErrors, 1)
			log.Error.Printf("contig %s: %v", contig.Name, err)
			return
		}
	}
}

const tsvHeader = "EVENT_ID\tLEFT_CONTIG\tLEFT_POS\tRIGHT_CONTIG\tRIGHT_POS\tSTRAND_SWITCH\tTYPE\t" +
	"HOMOLOGY\tINSERTION\tDUP_UNIT\tDUP_REF_COPIES\tDUP_CTG_COPIES\tDUP_CIGARS\tALT_LEN\tN_CONTIGS\tCONTIGS"

func writeTSV(ctx context.Context, path string, events []*breakpoint.Event) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	return writeEvents(out.Writer(ctx), events)
}

func writeEvents(w io.Writer, events []*breakpoint.Event) error {
	out := tsv.NewWriter(w)
	out.WriteString(tsvHeader)
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, ev := range events {
		adj := ev.Adjacency
		c := adj.Complication
		out.WriteString(adj.EventID())
		out.WriteString(adj.LeftLoc.Contig)
		out.WriteInt64(int64(adj.LeftLoc.Start))
		out.WriteString(adj.RightLoc.Contig)
		out.WriteInt64(int64(adj.RightLoc.Start))
		out.WriteString(adj.StrandSwitch.String())
		out.WriteString(c.Kind.String())
		out.WriteString(orDot(c.Homology))
		out.WriteString(orDot(c.InsertedSequence))
		if c.HasDuplication() {
			out.WriteString(c.Dup.RepeatUnitRefSpan.String())
			out.WriteInt64(int64(c.Dup.RepeatNumOnRef))
			out.WriteInt64(int64(c.Dup.RepeatNumOnCtg))
			out.WriteString(orDot(strings.Join(c.Dup.CigarsOnCtg, ",")))
		} else {
			out.WriteString(".")
			out.WriteString(".")
			out.WriteString(".")
			out.WriteString(".")
		}
		out.WriteInt64(int64(len(adj.AltHaplotype)))
		out.WriteInt64(int64(len(ev.Contigs)))
		out.WriteString(strings.Join(ev.Contigs, ","))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

func orDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}

func writeAdjacencies(ctx context.Context, path string, events []*breakpoint.Event) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	w := adjacency.NewWriter(out.Writer(ctx))
	e := errors.Once{}
	for _, ev := range events {
		if err := w.Write(ev.Adjacency); err != nil {
			e.Set(err)
			break
		}
	}
	e.Set(w.Close())
	e.Set(out.Close(ctx))
	if err := e.Err(); err != nil {
		return errors.E(err, "write", path)
	}
	log.Printf("wrote %d adjacencies to %s", w.Len(), path)
	return nil
}
