// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// edges.go — Edge Sampler.
//
// Contract:
//   • Labels are emitted Knows, Works_for, Likes; each gets exactly its bucket.
//   • Ids are global and consecutive: E1..En.
//   • Every edge draws its source first, then its target.
//   • Person→Person draws reject self-loops by redrawing the target; the
//     loop terminates because checkEdgePreconditions guarantees >= 2 Persons.
//   • Edges are written as they are drawn; nothing is buffered beyond bufio.

package generator

import (
	"strconv"

	"github.com/katalvlaran/pgdfgen/pgdf"
	"github.com/katalvlaran/pgdfgen/rng"
)

// checkEdgePreconditions runs after the node file is complete and before any
// edge output is touched. New already rejects a lone Person; the second
// check keeps the rejection loops terminating for any plan.
func (ru *run) checkEdgePreconditions() error {
	if ru.plan.TotalEdges() == 0 {
		return nil
	}
	if len(ru.persons) == 0 {
		return wrapf(ErrNoPersons, methodEdges, "%d edges requested", ru.plan.TotalEdges())
	}
	if len(ru.persons) < minPersonsForPersonTargets && ru.plan.needsPersonTarget(ru.cfg.likesOrgProbability) {
		return wrapf(ErrPopulationTooSmall, methodEdges, "%d Person(s), Person targets required", len(ru.persons))
	}
	return nil
}

// emitEdges streams every bucket through ew.
func (ru *run) emitEdges(ew *pgdf.EdgeWriter) error {
	if err := ew.WriteHeader(); err != nil {
		return outputError(err, methodEdges, "header")
	}
	if len(ru.orgs) == 0 && (ru.plan.EdgeCounts[idxWorksFor] > 0 || ru.plan.EdgeCounts[idxLikes] > 0) {
		msg := "no Organization nodes; Works_for and Likes fall back to Person targets"
		ru.report.OrganizationFallback = true
		ru.report.Warnings = append(ru.report.Warnings, msg)
		ru.log.Warnw(msg, "run_id", ru.report.RunID)
	}

	next := 1
	for li, label := range edgeLabels {
		n := ru.plan.EdgeCounts[li]
		for i := 0; i < n; i++ {
			out, in := ru.sampleEdge(li)
			if err := ew.Write(edgeIDPrefix+strconv.Itoa(next), label, out, in); err != nil {
				return outputError(err, methodEdges, label)
			}
			next++
		}
		ru.report.EdgeCounts[label] = n
		ru.log.Debugw("edge bucket", "label", label, "edges", n)
	}
	if err := ew.Flush(); err != nil {
		return outputError(err, methodEdges, "flush")
	}
	ru.report.Edges = next - 1
	return nil
}

// sampleEdge draws one (source, target) pair for label index li.
func (ru *run) sampleEdge(li int) (string, string) {
	si := ru.r.Intn(len(ru.persons))
	src := ru.persons[si]
	switch li {
	case idxWorksFor:
		if len(ru.orgs) > 0 {
			return src, rng.Choice(ru.r, ru.orgs)
		}
	case idxLikes:
		if len(ru.orgs) > 0 && ru.r.Float64() < ru.cfg.likesOrgProbability {
			return src, rng.Choice(ru.r, ru.orgs)
		}
	}
	return src, ru.persons[ru.otherPerson(si)]
}

// otherPerson draws a Person index different from si.
func (ru *run) otherPerson(si int) int {
	for {
		if ti := ru.r.Intn(len(ru.persons)); ti != si {
			return ti
		}
	}
}
