// Package jph provides types and interfaces for working with the
// JSONPlaceholder REST API (https://jsonplaceholder.typicode.com).
//
// # Overview
//
// The jph package defines the domain types (Post, User) and the interfaces
// for resource-oriented clients (PostsClient, UsersClient). A concrete
// implementation is provided by the jphclient package, which wires
// configuration and transport. Most consumers should import jphclient to
// construct a client and then use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/jph/pkg/jph"
//	  "github.com/fivetwenty-io/jph/pkg/jphclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := jphclient.New(ctx, &jph.Config{APIEndpoint: jph.DefaultAPIEndpoint})
//	  if err != nil { log.Fatal(err) }
//
//	  posts, err := cli.Posts().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Errors
//
// Non-2xx responses are reported as *HTTPError. StatusCode and IsNotFound
// make it easy to branch on them; transport and decoding failures are
// wrapped with %w and keep their original description.
//
// # Logging
//
// Logger is a small field-map interface. NewZapLogger adapts a zap logger to
// it; NopLogger discards everything.
package jph
