// Package graphkit is a general-purpose graph-algorithms core: an abstract
// graph substrate over integer-identified nodes and arcs, a family of
// non-owning view adapters that compose over that substrate, and the
// algorithm kernels that run over the combined interface.
//
// Subpackages:
//
//	core/         — Node, Arc, Directedness, ArcFilter, GraphInterface and the
//	                concrete graphs (CustomGraph, CompleteGraph, PathGraph)
//	structures/   — DisjointSet, IdAllocator, IndexedPriorityQueue
//	views/        — Subgraph, ContractedGraph, Reverse/Redirected/Undirected,
//	                Supergraph, Path, Matching
//	traversal/    — configurable DFS/BFS with hook points, lowpoint DFS
//	shortpath/    — Dijkstra, Bellman-Ford, A*
//	connectivity/ — connected/strong/bi-connected components, bipartition,
//	                topological order
//	mst/          — Kruskal and Prim minimum spanning forests
//	maxflow/      — push-relabel max-flow (integer exact, real via scaling)
//	simplex/      — primal network simplex for minimum-cost circulation
//	matching/     — bipartite maximum and minimum-cost matching
//	isomorphism/  — iterated color-refinement isomorphism test
//
// Every view and every concrete graph implements core.Graph, so an algorithm
// written against core.Graph runs unmodified over a built graph, a filtered
// subgraph, a contracted graph, or any stack of the above. Algorithms never
// mutate the graphs they read.
package graphkit
