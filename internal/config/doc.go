// Package config defines the format-agnostic manifest model for an archive,
// along with the Loader interface for reading manifests from various sources.
//
// The `config.Model` is all the app needs to know about a manifest: the
// archive base name and the ordered list of files. Concrete loaders, such as
// the HCL one, are provided in separate packages.
package config
