// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// nodes.go — Node Emitter: one header per non-empty schema block, then the
// block's rows; ids are recorded per kind in creation order.

package generator

import (
	"strconv"

	"github.com/katalvlaran/pgdfgen/pgdf"
	"github.com/katalvlaran/pgdfgen/synth"
)

// nameFns maps each kind to its name synthesizer.
var nameFns = map[pgdf.Kind]synth.NameFn{
	pgdf.Person:       synth.PersonName,
	pgdf.Organization: synth.OrgName,
}

// emitNodes writes both kinds, Persons first.
func (ru *run) emitNodes(nw *pgdf.NodeWriter) error {
	for _, k := range pgdf.Kinds {
		blocks, err := planBlocks(ru.cfg, ru.r, k, ru.plan.Population(k))
		if err != nil {
			return err
		}
		if err := ru.emitKind(nw, k, blocks); err != nil {
			return err
		}
	}
	if err := nw.Flush(); err != nil {
		return outputError(err, methodNodes, "flush")
	}
	return nil
}

// emitKind writes kind k block by block. seq runs 1..population across blocks.
func (ru *run) emitKind(nw *pgdf.NodeWriter, k pgdf.Kind, blocks []int) error {
	cat := ru.cfg.catalogs[k]
	ids := make([]string, 0, ru.plan.Population(k))
	seq := 0
	for i, n := range blocks {
		if n == 0 {
			continue
		}
		schema := cat.schemas[i]
		if err := nw.Begin(schema); err != nil {
			return outputError(err, methodNodes, "header")
		}
		ru.log.Debugw("schema block", "kind", k.String(), "variant", i, "rows", n, "header", schema.Header())

		values := make([]string, len(schema))
		for j := 0; j < n; j++ {
			seq++
			id := k.Tag() + strconv.Itoa(seq)
			ru.fillRow(values, schema, k, id, seq)
			if err := nw.WriteRow(values); err != nil {
				return outputError(err, methodNodes, "row "+id)
			}
			ids = append(ids, id)
		}
		ru.report.Blocks = append(ru.report.Blocks, BlockReport{Kind: k.String(), Variant: i, Schema: schema.Clone(), Rows: n})
	}

	if k == pgdf.Person {
		ru.persons = ids
	} else {
		ru.orgs = ids
	}
	return nil
}

// fillRow populates values for one entity. The name is drawn first so that
// dependent columns (email, website) stay consistent with it; the remaining
// columns draw in schema order.
func (ru *run) fillRow(values []string, schema pgdf.Schema, k pgdf.Kind, id string, seq int) {
	e := synth.Entity{ID: id, Seq: seq, Name: nameFns[k](ru.r, seq)}
	for c, col := range schema {
		switch col {
		case pgdf.ColID:
			values[c] = id
		case pgdf.ColLabel:
			values[c] = k.Label()
		default:
			if f, ok := ru.reg[col]; ok {
				values[c] = f(ru.r, e)
			} else {
				values[c] = ""
			}
		}
	}
}
