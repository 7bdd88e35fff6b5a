// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package breakpoint

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

// codecVersion leads every encoded NovelAdjacency. Bump it when the layout
// below changes.
const codecVersion = 1

// The encoding is a sequence of protobuf varints and length-prefixed byte
// strings, in the order written by encoder.identity, followed by the
// alternate haplotype.
type encoder struct{ *proto.Buffer }

func newEncoder() encoder { return encoder{proto.NewBuffer(nil)} }

// The proto.Buffer encoders never fail.
func (e encoder) int(v int)      { _ = e.EncodeVarint(uint64(v)) }
func (e encoder) str(s string)   { _ = e.EncodeStringBytes(s) }
func (e encoder) bytes(b []byte) { _ = e.EncodeRawBytes(b) }
func (e encoder) bool(v bool)    { e.int(boolToInt(v)) }
func (e encoder) locus(s SimpleInterval) {
	e.str(s.Contig)
	e.int(s.Start)
	e.int(s.End)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (e encoder) identity(n *NovelAdjacency) {
	e.locus(n.LeftLoc)
	e.locus(n.RightLoc)
	e.int(int(n.StrandSwitch))
	c := n.Complication
	e.int(int(c.Kind))
	e.str(c.Homology)
	e.str(c.InsertedSequence)
	e.bool(c.HasDuplication())
	if c.HasDuplication() {
		e.locus(c.Dup.RepeatUnitRefSpan)
		e.int(c.Dup.RepeatNumOnRef)
		e.int(c.Dup.RepeatNumOnCtg)
		e.int(len(c.Dup.CigarsOnCtg))
		for _, cigar := range c.Dup.CigarsOnCtg {
			e.str(cigar)
		}
	}
}

// Marshal encodes n, alternate haplotype included.
func (n *NovelAdjacency) Marshal() []byte {
	e := newEncoder()
	e.int(codecVersion)
	e.identity(n)
	e.bytes(n.AltHaplotype)
	return e.Bytes()
}

// decoder reads the encoding back. The first error sticks; later reads
// return zero values.
type decoder struct {
	b   *proto.Buffer
	err error
}

func (d *decoder) int() int {
	if d.err != nil {
		return 0
	}
	v, err := d.b.DecodeVarint()
	d.err = err
	return int(v)
}

func (d *decoder) str() string {
	if d.err != nil {
		return ""
	}
	s, err := d.b.DecodeStringBytes()
	d.err = err
	return s
}

func (d *decoder) bytes() []byte {
	if d.err != nil {
		return nil
	}
	b, err := d.b.DecodeRawBytes(true)
	d.err = err
	return b
}

func (d *decoder) locus() SimpleInterval {
	return SimpleInterval{Contig: d.str(), Start: d.int(), End: d.int()}
}

// UnmarshalNovelAdjacency decodes the output of NovelAdjacency.Marshal.
func UnmarshalNovelAdjacency(data []byte) (*NovelAdjacency, error) {
	d := decoder{b: proto.NewBuffer(data)}
	if v := d.int(); d.err == nil && v != codecVersion {
		return nil, errors.Errorf("novel adjacency: unsupported format version %d", v)
	}
	n := &NovelAdjacency{}
	n.LeftLoc = d.locus()
	n.RightLoc = d.locus()
	n.StrandSwitch = StrandSwitch(d.int())
	c := &n.Complication
	c.Kind = Kind(d.int())
	c.Homology = d.str()
	c.InsertedSequence = d.str()
	if d.int() == 1 {
		c.Dup.RepeatUnitRefSpan = d.locus()
		c.Dup.RepeatNumOnRef = d.int()
		c.Dup.RepeatNumOnCtg = d.int()
		ncigars := d.int()
		if ncigars < 0 || ncigars > len(data) {
			return nil, errors.Errorf("novel adjacency: corrupt cigar count %d", ncigars)
		}
		c.Dup.CigarsOnCtg = make([]string, ncigars)
		for i := range c.Dup.CigarsOnCtg {
			c.Dup.CigarsOnCtg[i] = d.str()
		}
	}
	n.AltHaplotype = d.bytes()
	if d.err != nil {
		return nil, errors.Wrap(d.err, "novel adjacency: truncated record")
	}
	if err := n.check(); err != nil {
		return nil, err
	}
	if n.AltHaplotype == nil {
		n.AltHaplotype = []byte{}
	}
	return n, nil
}

// check validates the fields of a decoded adjacency.
func (n *NovelAdjacency) check() error {
	for _, s := range [...]SimpleInterval{n.LeftLoc, n.RightLoc} {
		if s.Contig == "" || s.Start < 1 || s.End < s.Start {
			return errors.Errorf("novel adjacency: invalid locus %v", s)
		}
	}
	if int(n.StrandSwitch) >= len(strandSwitchNames) {
		return errors.Errorf("novel adjacency: invalid strand switch %d", n.StrandSwitch)
	}
	c := n.Complication
	if c.Kind >= numKinds {
		return errors.Errorf("novel adjacency: invalid complication kind %d", c.Kind)
	}
	if c.HasDuplication() {
		u := c.Dup.RepeatUnitRefSpan
		if u.Contig == "" || u.Start < 1 || u.End < u.Start {
			return errors.Errorf("novel adjacency: invalid repeat unit %v", u)
		}
		if c.Dup.RepeatNumOnRef < 1 || c.Dup.RepeatNumOnCtg < 1 {
			return errors.Errorf("novel adjacency: invalid repeat copy numbers %d -> %d", c.Dup.RepeatNumOnRef, c.Dup.RepeatNumOnCtg)
		}
	}
	return nil
}
