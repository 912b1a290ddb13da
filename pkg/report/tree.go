// File: pkg/report/tree.go
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"bundlesize/pkg/bundle"

	"github.com/dustin/go-humanize"
)

// treeNode is a directory in the rendered tree. Blocks are kept as leaves.
type treeNode struct {
	name   string
	prefix string
	dirs   map[string]*treeNode
	leaves map[string]int
}

func newTreeNode(name, prefix string) *treeNode {
	return &treeNode{name: name, prefix: prefix, dirs: map[string]*treeNode{}, leaves: map[string]int{}}
}

// WriteTree renders the rollup as an indented tree. Directories are listed
// before blocks, both alphabetically, each annotated with its size.
func WriteTree(w io.Writer, dirs bundle.DirSizeMap, sizes bundle.SizeMap, human bool) error {
	if len(sizes) == 0 {
		return nil
	}
	root := buildTree(sizes)

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s (%s)\n", bundle.RootPrefix, formatSize(dirs[bundle.RootPrefix], human)))
	writeTreeRecursively(&out, root, dirs, "", human)

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("failed to write tree report: %w", err)
	}
	return nil
}

func buildTree(sizes bundle.SizeMap) *treeNode {
	root := newTreeNode(bundle.RootPrefix, bundle.RootPrefix)
	for path, size := range sizes {
		parts := strings.Split(path, "/")
		node := root
		for n, part := range parts[:len(parts)-1] {
			child, ok := node.dirs[part]
			if !ok {
				child = newTreeNode(part, strings.Join(parts[:n+1], "/"))
				node.dirs[part] = child
			}
			node = child
		}
		node.leaves[parts[len(parts)-1]] = size
	}
	return root
}

// writeTreeRecursively writes the children of node with the given line prefix.
func writeTreeRecursively(out *strings.Builder, node *treeNode, dirs bundle.DirSizeMap, prefix string, human bool) {
	dirNames := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		dirNames = append(dirNames, name)
	}
	sort.Strings(dirNames)
	leafNames := sortedKeys(node.leaves)

	total := len(dirNames) + len(leafNames)
	for i, name := range dirNames {
		connector, extension := connectors(i == total-1)
		child := node.dirs[name]
		out.WriteString(fmt.Sprintf("%s%s%s/ (%s)\n", prefix, connector, name, formatSize(dirs[child.prefix], human)))
		writeTreeRecursively(out, child, dirs, prefix+extension, human)
	}
	for i, name := range leafNames {
		connector, _ := connectors(len(dirNames)+i == total-1)
		out.WriteString(fmt.Sprintf("%s%s%s (%s)\n", prefix, connector, name, formatSize(node.leaves[name], human)))
	}
}

func connectors(last bool) (string, string) {
	if last {
		return "└── ", "    "
	}
	return "├── ", "│   "
}

func formatSize(size int, human bool) string {
	if human && size >= 0 {
		return humanize.Bytes(uint64(size))
	}
	return strconv.Itoa(size)
}
