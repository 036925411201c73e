// Package cda provides types, interfaces, and helpers for working with a
// space-scoped content delivery API.
//
// # Overview
//
// The cda package defines the domain types (Space, ContentType, Entry,
// Asset, Collection) and the interfaces for resource-oriented clients
// (EntriesClient, AssetsClient, ...). A concrete implementation is provided
// by the cdaclient package, which wires configuration and transport. Most
// consumers should import cdaclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/contentapi-io/cda-client/pkg/cda"
//	  "github.com/contentapi-io/cda-client/pkg/cdaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cdaclient.New("my-space", "my-token")
//	  if err != nil { log.Fatal(err) }
//
//	  entry, err := cli.Entries().Get(ctx, "entry-id")
//	  if err != nil { log.Fatal(err) }
//	  _ = entry
//	}
//
// # Queries
//
// Use QueryParams to express collection filters. Date values encode as
// RFC 3339 UTC strings and multi-valued filters join with commas:
//
//	params := cda.NewQueryParams().
//	  WithContentType("article").
//	  WithLimit(50).
//	  WithDateFilter("sys.updatedAt[gte]", since)
//	entries, err := cli.Entries().List(ctx, params)
//
// # Asynchronous delivery
//
// Every fetch is also available in two asynchronous forms. Callback mode
// invokes a completion function exactly once with a Result:
//
//	op := cli.Entries().Fetch("entry-id", func(r cda.Result[cda.Entry]) {
//	  if err := r.Err(); err != nil { /* handle */ }
//	})
//
// Signal mode returns a one-shot signal any number of observers may
// subscribe to:
//
//	op, sig := cli.Entries().FetchSignal("entry-id")
//	sig.Subscribe(func(r cda.Result[cda.Entry]) { /* ... */ })
//
// Both return an Operation whose Cancel suppresses the pending delivery.
//
// # Errors
//
// Errors are represented by APIError (non-2xx responses),
// UnparseableJSONError (decode failures), and the ErrInvalidURL sentinel.
// Helpers such as IsNotFound, IsUnauthorized, and IsUnparseableJSON make it
// easy to branch on common cases.
package cda
