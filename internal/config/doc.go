// Package config defines the format-agnostic configuration model of an
// office floor along with the Loader interface implemented by the concrete
// configuration formats.
//
// The `config.Model` is the single input of the compiler. Concrete loaders,
// such as for HCL and YAML, are provided in separate packages. Link fields
// hold dotted references (see package nodeid) that the compiler resolves
// against the floor or against the enclosing office.
package config
