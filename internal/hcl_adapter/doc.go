// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. Jobs are declared as labeled blocks:
//
//	job "a" {}
//
//	job "b" {
//	  depends_on = job.c
//	}
//
//	job "c" {
//	  depends_on = "f"
//	}
//
// A dependency can be written either as a `job.<name>` reference or as any
// expression that evaluates to a string. A null value means no dependency.
package hcl_adapter
