package inspect

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the node structure of tree in Graphviz DOT format. It returns
// the first error writing to w.
func ToDot(tree Layered, w io.Writer) error {
	sw := &stickyWriter{w: w}
	io.WriteString(sw, "strict digraph {\n")
	io.WriteString(sw, "\tnode [fontname=Arial,fontsize=12];\n")
	s := shapeOf(tree)
	nodelist, edgelist := "", ""
	for d := 0; s.cap > 0 && d <= s.height; d++ {
		from, to := s.layer(d)
		for i := from; i < to; i++ {
			value, pending := tree.Label(i)
			text := dotEscape(value)
			if pending != "" {
				text += "\\n[" + dotEscape(pending) + "]"
			}
			styles := nodeDotStyles(d == s.height, s.isPadding(i, d))
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", i, text, styles)
			if d < s.height {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, i<<1)
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, i<<1|1)
			}
		}
	}
	io.WriteString(sw, nodelist)
	io.WriteString(sw, edgelist)
	io.WriteString(sw, "}\n")
	return sw.err
}

func nodeDotStyles(isleaf, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	if padding {
		s += ",color=gray,fillcolor=white"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
