// Package config loads paxtrend settings.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and PAXTREND_* environment variables. Example file:
//
//	source: data.csv
//	first_year: "1949"
//	last_year: "1960"
//	output: json
//	logging:
//	  level: debug
//	  format: json
//
// Year bounds are kept as strings; their format is checked by the stats
// package, not here.
package config
