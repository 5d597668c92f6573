// Package compiler turns a config.Model into a validated, fully linked node
// graph and emits it into a build.Builder.
//
// A pass runs in fixed phases:
//
//  1. construct: one node per configured element, parents before children.
//  2. initialise: every node receives its immutable state exactly once.
//  3. link: references are looked up and stored as capability links. The
//     phase can be re-run; re-linking the same target is a no-op.
//  4. validate: types are loaded lazily through the pass's compile context
//     and every configured element is checked against them.
//  5. build: only when no issue was reported, each entity is handed to the
//     builder once, dependencies before dependents.
//
// Problems with the configuration never abort a pass. They are collected in
// the pass's issue sink and the graph stays inspectable.
package compiler
