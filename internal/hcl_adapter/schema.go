package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks of a jobs file.
type fileRoot struct {
	Jobs   []*jobBlock `hcl:"job,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// jobBlock is the HCL schema of a `job` block.
type jobBlock struct {
	Name        string         `hcl:"name,label"`
	DependsOn   hcl.Expression `hcl:"depends_on,optional"`
	Description string         `hcl:"description,optional"`
}
