// Package lox implements the scanner, parser, and tree-walking evaluator
// for the expression core of a small Lox-lineage scripting language.
package lox
