// Package commands wires the memplot subcommands: contacts, curvature,
// order and density. Each subcommand loads its input files, derives plot
// limits and grids through the deriv package and renders one image file.
package commands
