// Package vrmlparser implements a parser for VRML 2.0 (VRML97) scene
// descriptions.
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, stripping whitespace and
//     '#' comments.
//   - ParserContext: a stateful cursor over the tokens that owns the
//     per-document symbol table and PROTO interface tables.
//   - Statement grammar and field value model: mutually recursive parsers
//     for node, field, USE, PROTO/EXTERNPROTO, and ROUTE statements that
//     build Node instances holding typed Field values.
//
// DEF names a node; a later USE references the identical node instance, so
// the result is a shared object graph, not a tree. Field values form a
// closed polymorphic set (SF* scalars and MF* sequences); consumers act
// per-variant through the FieldVisitor double-dispatch contract rather than
// runtime type inspection.
//
// Usage:
//
//	scene, err := vrmlparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(scene.Nodes), len(scene.Defs))
//
// Parsing is single-threaded and synchronous; independent documents may be
// parsed concurrently, each with its own call to Parse. All failures abort
// the parse and surface as positioned error types (LexError, SyntaxError,
// FieldError, EventInError, EventOutError, UndefinedNodeError, DepthError,
// UnexpectedEOFError); there is no partial best-effort result.
package vrmlparser
