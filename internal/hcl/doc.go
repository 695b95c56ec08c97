// Package hcl provides the concrete HCL implementation of the manifest
// Loader interface defined in the `config` package. It is responsible for
// parsing manifest files, evaluating their expressions, and translating the
// result into the format-agnostic model.
package hcl
