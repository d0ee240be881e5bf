// Package scripts embeds the built-in DOCTOR script, reproduced from
// Weizenbaum's 1966 CACM paper, as the CLI's default rule set and as the
// fixture the engine's end-to-end tests run the canonical conversation
// against.
package scripts

import _ "embed"

//go:embed doctor.eliza
var Doctor string
