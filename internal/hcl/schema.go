package hcl

// fileRoot is the shape of a manifest file.
type fileRoot struct {
	Vimballs []*vimballBlock `hcl:"vimball,block"`
}

// vimballBlock is a `vimball "<name>" { ... }` block.
type vimballBlock struct {
	Name  string   `hcl:"name,label"`
	Files []string `hcl:"files"`
}
