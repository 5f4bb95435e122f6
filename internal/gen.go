// Package internal hosts the ent schema definitions and their generated
// client. The generated code is written to internal/repo and is not
// committed; run `go generate ./internal` after changing any schema.
package internal

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo --feature sql/upsert ./schema
