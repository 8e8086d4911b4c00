// Package tools declares AstraWeave's gameplay verb manifest: the
// ActionStep tagged union planners emit, the ToolRegistry of declared verbs
// and their argument schemas, the closed CooldownKey taxonomy, and the
// ToolError kinds the sandbox validator (package sandbox) can return. This
// package carries no validation logic of its own beyond schema compilation;
// it is the data planners and the validator both agree on.
package tools
