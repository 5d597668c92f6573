// Package hclconfig loads office floor configuration written in HCL.
//
// A file may mix floor elements and type definitions:
//
//	team "workers" {
//	  source = "team.pool"
//	}
//
//	office "web" {
//	  default_team = "main"
//	  team "main" { link = "workers" }
//	  input "request" { link = "handle" }
//
//	  function "handle" {
//	    source = "handler"
//	    flow "next" { link = "render" }
//	  }
//	}
//
//	function_type "handler" {
//	  parameter = string
//	  flow "next" { argument = string }
//	}
//
// Every named child that carries a link is a block with a `link` attribute
// holding a dotted reference. Type attributes use HCL type expressions
// (`string`, `list(number)`, `object({...})`).
package hclconfig
