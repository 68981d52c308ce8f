// SPDX-License-Identifier: MIT

// Package lvlindex is a read-only, label-keyed descendant index for large
// taxonomies: build it once from parent→child relations, then ask for the
// children of a label or walk every descendant of one or more labels.
//
// Everything is organized under four packages, leaves first:
//
//	labels/     — label ↔ dense uint32 identifier maps
//	adjacency/  — flat []uint32 store; a node's identifier is its block offset
//	traverse/   — lazy multi-source BFS yielding (id, depth), each node once
//	hierarchy/  — builders (FromPairs, FromLists, FromEdges, FromMap) and the
//	              query surface (CountNodes, ChildrenOf, DescendantsOf)
//
// plus loader/ for JSON and YAML mapping files and cmd/lvlindex, a small CLI
// over both.
//
// Quick ASCII example:
//
//	    A
//	   / \
//	  B   C
//	   \ / \
//	    D   E
//
//	DescendantsOf("A") yields (1,B) (1,C) (2,D) (2,E); D is reached twice
//	but produced once.
//
//	go get github.com/katalvlaran/lvlindex
package lvlindex
