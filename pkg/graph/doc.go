/*
Package graph renders transition tables as diagrams.

A Diagram is a renderer-neutral description of a machine, built either from
a file definition (FromDef) or straight from in-code tables (FromTable,
FromEventTable). It renders to Mermaid stateDiagram-v2 source for embedding
in documentation and to Graphviz DOT for tooling pipelines.

An Overlay highlights runtime position on top of the static structure: the
current state and the states visited so far. The run command uses this to
serve a live diagram of an executing machine.

	d, _ := def.Load("turnstile.yaml")
	fmt.Println(graph.FromDef(d).Mermaid(nil))
*/
package graph
