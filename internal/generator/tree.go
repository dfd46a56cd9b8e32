package generator

import "strings"

// NodeType distinguishes file leaves from folders
type NodeType string

const (
	NodeFile   NodeType = "file"
	NodeFolder NodeType = "folder"
)

// FileTreeNode is one node of the display tree. Files carry a back
// reference to the GeneratedFile path; folders carry children.
type FileTreeNode struct {
	Name     string
	Type     NodeType
	Children []*FileTreeNode
	FilePath string
}

// BuildTree converts a flat file list into a nested folder/file tree
// rooted at a virtual folder named rootName (callers pass
// FrameworkFolderName; an empty rootName falls back to the unnamed
// project's folder). Sibling order is insertion order; callers wanting
// a sorted view sort themselves. Folder nodes are reused by name within
// their parent, so repeated path prefixes never create duplicates.
// Built fresh on every call; no state survives between invocations.
func BuildTree(rootName string, files []GeneratedFile) *FileTreeNode {
	if rootName == "" {
		rootName = "project-framework"
	}
	root := &FileTreeNode{Name: rootName, Type: NodeFolder}

	for _, f := range files {
		parts := strings.Split(f.Path, "/")
		current := root

		for i, part := range parts {
			if i == len(parts)-1 {
				current.Children = append(current.Children, &FileTreeNode{
					Name:     part,
					Type:     NodeFile,
					FilePath: f.Path,
				})
				continue
			}
			current = current.childFolder(part)
		}
	}

	return root
}

// childFolder finds the named folder among the node's children, creating
// it when absent
func (n *FileTreeNode) childFolder(name string) *FileTreeNode {
	for _, c := range n.Children {
		if c.Type == NodeFolder && c.Name == name {
			return c
		}
	}
	folder := &FileTreeNode{Name: name, Type: NodeFolder}
	n.Children = append(n.Children, folder)
	return folder
}
