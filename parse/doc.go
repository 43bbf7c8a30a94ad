// Package parse parses JSON or YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Object keys keep document order. A JSON number without a fraction or
// exponent becomes an integer node, anything else a double; the literal
// text is kept in Node.Number. Parent links are set, so Node.KPath is
// meaningful on every node of the result.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap/ir - IR representation
//   - github.com/signadot/fieldmap/encode - Encode IR to text
package parse
