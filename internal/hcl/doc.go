// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for parsing chart files, decoding their blocks, and
// converting cty values such as inline rows and scale domains into plain Go
// values.
package hcl
