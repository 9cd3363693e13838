package trigger

import "embed"

// builtinTriggersFS embeds the builtin trigger definitions.
//
//go:embed triggers/*.yml
var builtinTriggersFS embed.FS
