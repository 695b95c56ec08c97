package config

// Model is the unified, format-agnostic representation of an archive
// manifest.
type Model struct {
	// Name is the archive base name, without the .vba suffix.
	Name string
	// Files are the source paths, in archive order, exactly as they will
	// appear on the marker lines.
	Files []string
	// Source is the manifest file the model was loaded from.
	Source string
}
