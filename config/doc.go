// Package config centralizes QUEKNO-RX's builder configuration: the
// required options from §6 of the specification (opt_type, target_cost,
// archgraph, subgraph_size, qbg_ratio), the runtime constants table
// (§6, loadable from an INI file via gopkg.in/ini.v1), and the OptType /
// SubgraphSize / QBGRatio enumerations.
//
// The configuration flows through a single builderConfig-style struct,
// built with the functional-options pattern: Option mutates a
// Config before the builder runs. Option constructors validate and panic
// on meaningless inputs (negative target cost, nil archgraph); the
// algorithms themselves never panic.
package config
