// Package polygonize inverts a Geometry Graph's edge set into a minimal
// set of polygon faces plus leftover dangles.
//
// Dangles are found first: they are exactly the bridges of the graph
// (dfs.Bridges), the edges that lie on no cycle and therefore can never
// bound a closed face. Degree-one pruning would miss cut edges connecting
// two rings; bridge detection does not.
//
// The remaining edges become two directed half-edges each. Outgoing
// half-edges at every node are ordered by azimuth (atan2 over the (x, y)
// plane; z is ignored), and faces are traced with the twin-then-
// clockwise-next rule. Interior faces come out counter-clockwise, the
// unbounded face of each component clockwise. CCW rings not contained in
// another CCW ring become shells; CW rings contained in a shell become
// that shell's holes (smallest containing shell wins); the remaining CW
// rings are the unbounded faces and are discarded.
//
// Tracing is corroborated against Euler's formula: over the cyclic
// subgraph, the ring count must equal E - V + 2C (components counted by a
// dfs.DFS forest walk). A shortfall means the rotation system has
// crossings without a shared node — the input was not fully noded — as
// does a traced ring that revisits a node. Either way the faces are still
// emitted, with a warning and an error wrapping ErrDefect alongside the
// otherwise complete result; callers may re-node and retry.
// WithoutDefective switches to dropping node-revisiting faces instead.
package polygonize
