// Package hbswitch provides Handlebars-style {{#switch}} / {{#case}} /
// {{#default}} block helpers, together with the minimal template host they
// run in.
//
// A switch block captures the value of its single argument and renders the
// first case whose values contain it; the default block renders when no
// case matched. Cases accept several values and match any of them. Matching
// is first-match-wins: once a case matches, later cases and the default are
// skipped even if they would also match. Switches nest freely, and each
// nesting level keeps its own independent matching state.
//
// Example usage:
//
//	engine := hbswitch.NewEngine()
//
//	tpl := `{{#switch access}}` +
//		`{{#case "admin"}}Admin{{/case}}` +
//		`{{#default}}User{{/default}}` +
//		`{{/switch}}`
//
//	result, err := engine.Render(tpl, map[string]interface{}{"access": "admin"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result == "Admin"
//
// The case and default helpers only exist inside a switch body; using them
// anywhere else fails the render with an unknown-helper error, and a switch
// without an argument fails with a missing-argument error.
//
// Built-in helpers:
//   - switch/case/default - first-match-wins branching
//   - uppercase - Convert string to uppercase
//   - lowercase - Convert string to lowercase
//   - trim - Trim whitespace from string
//   - eq - Structural equality comparison
//   - ne - Structural inequality comparison
//   - gt - Greater than (for numbers)
//   - lt - Less than (for numbers)
//   - contains - Check if string contains substring
//   - join - Join array elements with separator
//   - len - Get length of array/string/map
//
// Custom helpers implement the Helper interface (or wrap a function in
// HelperFunc) and are registered globally with RegisterHelper, per engine
// with Engine.RegisterHelper, or per block scope through a BlockContext,
// which is how switch binds case and default for the extent of its body.
package hbswitch
