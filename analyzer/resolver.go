package analyzer

import "bytes"

const separator = '\\'

// Resolve turns a raw name into its canonical form given the active
// namespace, the imports in declaration order, and the enclosing class's
// unqualified name (nil/empty when not in a class).
//
//  1. Already-qualified names (leading separator) are returned unchanged.
//  2. A name matching the enclosing class resolves against the current
//     namespace (the enclosing class is defined there).
//  3. Otherwise the first path segment is matched, in declaration order,
//     against the suffix of each import; the first match wins and the
//     segment is replaced by the full import path.
//  4. Failing that, the namespace is prepended.
func Resolve(name []byte, namespace []byte, imports [][]byte, classScope []byte) []byte {
	if len(name) > 0 && name[0] == separator {
		return name
	}

	if len(classScope) > 0 && bytes.Equal(name, classScope) {
		return qualify(namespace, name)
	}

	head := name
	if idx := bytes.IndexByte(name, separator); idx >= 0 {
		head = name[:idx]
	}

	for _, imported := range imports {
		if bytes.HasSuffix(imported, head) {
			qualified := make([]byte, 0, len(imported)+len(name)-len(head))
			qualified = append(qualified, imported...)
			qualified = append(qualified, name[len(head):]...)
			return qualified
		}
	}

	return qualify(namespace, name)
}

func qualify(namespace []byte, name []byte) []byte {
	out := make([]byte, 0, len(namespace)+1+len(name))
	out = append(out, namespace...)
	out = append(out, separator)
	out = append(out, name...)
	return out
}
