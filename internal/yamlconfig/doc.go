// Package yamlconfig loads office floor configuration written in YAML.
//
// Elements are listed per kind. Named link-carrying children are mappings
// from the child's name to its dotted reference, so their order is kept:
//
//	teams:
//	  - name: workers
//	    source: team.pool
//	offices:
//	  - name: web
//	    default_team: main
//	    teams: {main: workers}
//	    inputs: {request: handle}
//	    functions:
//	      - name: handle
//	        source: handler
//	        flows: {next: render}
//	definitions:
//	  functions:
//	    - name: handler
//	      parameter: string
//	      flows: {next: string}
//
// Type attributes hold the same type expressions as the HCL format, written
// as strings. A file may contain several documents.
package yamlconfig
