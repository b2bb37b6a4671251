// Package figures defines the six CineMatch documentation figures.
//
// Every figure pairs a fixed output file name with a draw function that
// takes a fresh canvas. The literal content (counts, table cells, series,
// test names, entity placements) lives in an embedded TOML document,
// cinematch.toml, which [Load] decodes and validates before anything is
// drawn; the drawing code only knows how each kind of figure looks.
//
// Figures, in generation order:
//
//	database_components.png    text panel of database object counts
//	algorithm_comparison.png   styled comparison table
//	recommendation_accuracy.png grouped bar chart (gonum/plot)
//	sample_data_stats.png      horizontal bar chart (gonum/plot)
//	testing_results.png        checklist of passing test categories
//	er_diagram.png             entity-relationship diagram (package erd)
package figures
