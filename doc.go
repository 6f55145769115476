// Package dockerfile provides typed values for Dockerfile instructions and a
// builder that assembles them into the exact text of a Dockerfile.
//
// Every instruction is a named string type holding the argument text that
// follows its keyword. Nothing is parsed, quoted or validated: the payload is
// written verbatim, so callers supply any JSON arrays, quotes or flags the
// instruction needs.
//
// Supported instructions:
//   - # directive (parser directives such as escape=` or syntax=...)
//   - ARG, FROM
//   - ADD, COPY
//   - RUN, CMD, ENTRYPOINT, SHELL
//   - ENV, LABEL, USER, WORKDIR, VOLUME, EXPOSE
//   - HEALTHCHECK, ONBUILD, STOPSIGNAL
//
// A Dockerfile always has one base FROM instruction, given to NewBuilder.
// Parser directives and ARGs added with Builder.Directive and Builder.Arg are
// emitted before it; everything pushed afterwards follows in push order.
//
// Example usage:
//
//	df := dockerfile.NewBuilder("rust:${RUST_VERSION}-slim").
//	    Arg("RUST_VERSION=1.31").
//	    Push(dockerfile.Copy("/static ./static")).
//	    Push(dockerfile.Cmd("echo 'Hello. Goodbye.'")).
//	    Finish()
//
//	os.WriteFile("Dockerfile", df.Bytes(), 0o644)
package dockerfile
