// Package model defines the data structures shared by the swatch packages.
//
// This package contains the following main types:
//   - Page: The single fetched web page, raw bytes and decoded text
//   - ColorCount: One distinct color code and how often it occurred
//   - ColorReport: The result of one run, passed through every pipeline step
//
// Models live in their own package so that fetch, palette, pipeline and
// report can share them without import cycles. Report types are JSON
// serializable; fields that only matter during a run are excluded.
package model
