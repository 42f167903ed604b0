package oarrow

import (
	"bufio"
	"fmt"
	"io"
)

const (
	// HeaderGuard is the include guard of the description header
	HeaderGuard = "_oarrow_H_"

	// headerNameWidth is the column of '=' after the four-space indent
	headerNameWidth = 30
)

// WriteHeader writes the C description header declaring every identifier
// as one enum, in declaration order.
func WriteHeader(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", HeaderGuard, HeaderGuard)
	fmt.Fprint(bw, "enum\n{\n")
	for i, id := range declared {
		sep := ","
		if i == len(declared)-1 {
			sep = ""
		}
		fmt.Fprintf(bw, "    %-*s= %d%s\n", headerNameWidth, descriptors[id].Name+" ", int32(id), sep)
	}
	fmt.Fprint(bw, "};\n\n#endif\n")

	return bw.Flush()
}
