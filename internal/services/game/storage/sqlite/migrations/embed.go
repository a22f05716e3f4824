package migrations

import "embed"

// ContentRoot is the directory of content migrations inside ContentFS.
const ContentRoot = "content"

//go:embed content/*.sql
var ContentFS embed.FS
