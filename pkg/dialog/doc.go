// Package dialog defines the conversation domain: dialogue nodes, response
// styles, the validated graph arena, and per-session state.
//
// A Graph is immutable after construction and may be shared by any number of
// sessions without synchronization. All structural validation happens eagerly
// in NewGraph; code holding a *Graph can assume every reference resolves.
package dialog
