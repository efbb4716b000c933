/*
Package karibu is a graph-driven terminal chatbot engine.

A conversation is defined externally as a directed graph of dialogue nodes:
message nodes that present text and advance, choice nodes that branch on the
user's answer, and terminal nodes that end the session. Each node carries a
table of response styles; a session rolls one style at random and keeps it,
falling back to the mandatory base text on nodes without a variant.

The graph is loaded once, validated eagerly, and shared read-only:

	g, err := karibu.Open("conversation_flow.json")
	if err != nil {
		log.Fatal(err)
	}

	node := g.Start()
	fmt.Println(node.Text("casual"))

Everything structural is checked at load time, so code walking the graph can
assume every transition target exists. See pkg/dialog for the domain types
and pkg/transcript for the append-only session log.

The karibu binary under cmd/karibu drives the interactive terminal session:
a scrolling history pane, a typing animation for bot replies, and one
transcript file per session.
*/
package karibu
